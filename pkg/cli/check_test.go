// Copyright (c) 2025, Stratus Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stratus-tools/stratus/pkg/errors"
)

// checkRun executes the check command against the real command tree,
// writing the report to a temp file so it can be inspected.
func checkRun(t *testing.T, kind string, names ...string) (string, error) {
	t.Helper()

	out := filepath.Join(t.TempDir(), "report.yaml")
	args := []string{"stratus", "check", kind, "--local-only", "--output", out}
	args = append(args, names...)

	err := New().Run(t.Context(), args)

	content, readErr := os.ReadFile(out)
	if readErr != nil {
		t.Fatalf("reading report: %v", readErr)
	}
	return string(content), err
}

func TestCheckBucketsInvalidNameFails(t *testing.T) {
	report, err := checkRun(t, "buckets", "ab")
	if err == nil {
		t.Fatal("expected an error for a name violating the length rule")
	}
	if !errors.Is(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeInvalidRequest)
	}
	if got := errors.ExitCode(err); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
	// The report is still written before the failure is reported.
	if !strings.Contains(report, "INVALID") {
		t.Errorf("report missing INVALID verdict:\n%s", report)
	}
}

func TestCheckProjectsInvalidNameFails(t *testing.T) {
	_, err := checkRun(t, "projects", "Bad_ID")
	if err == nil {
		t.Fatal("expected an error for a name violating the naming rules")
	}
	if !errors.Is(err, errors.ErrCodeInvalidRequest) {
		t.Errorf("error code = %v, want %v", errors.CodeOf(err), errors.ErrCodeInvalidRequest)
	}
}

func TestCheckValidNamesSucceed(t *testing.T) {
	report, err := checkRun(t, "buckets", "valid-bucket-name")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.Contains(report, "VALID") {
		t.Errorf("report missing VALID verdict:\n%s", report)
	}
}
