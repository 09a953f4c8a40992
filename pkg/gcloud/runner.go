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

package gcloud

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/stratus-tools/stratus/pkg/defaults"
	"github.com/stratus-tools/stratus/pkg/errors"
)

// binaryName is the executable resolved from PATH.
const binaryName = "gcloud"

// Runner executes the gcloud binary with the given arguments and returns
// its stdout. Implementations must be safe for sequential reuse.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// CommandError describes a failed gcloud invocation. Stderr is trimmed and
// retained for classification and for surfacing to the user.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	cause    error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("gcloud %s: exit %d: %s", strings.Join(e.Args, " "), e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("gcloud %s: exit %d: %v", strings.Join(e.Args, " "), e.ExitCode, e.cause)
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.cause
}

// execRunner is the production Runner backed by the real binary.
type execRunner struct {
	path string
}

// NewRunner resolves gcloud from PATH and returns a Runner using it.
// A missing binary is a prerequisite failure (CLI exit status 2).
func NewRunner() (Runner, error) {
	path, err := exec.LookPath(binaryName)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePrerequisite,
			"gcloud not found in PATH; install the Google Cloud SDK", err)
	}
	return &execRunner{path: path}, nil
}

// Run executes gcloud with the given arguments, capturing stdout and stderr
// separately. The invocation is bounded by defaults.GcloudCommandTimeout so
// a hung binary cannot block indefinitely.
func (r *execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.GcloudCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	slog.Debug("gcloud invocation",
		"args", strings.Join(args, " "),
		"duration", time.Since(start),
		"failed", err != nil)

	if err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.Wrap(errors.ErrCodeTimeout,
				fmt.Sprintf("gcloud %s timed out after %s",
					strings.Join(args, " "), defaults.GcloudCommandTimeout), err)
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, &CommandError{
			Args:     args,
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr.String()),
			cause:    err,
		}
	}

	return stdout.Bytes(), nil
}

// Stderr markers used to classify gcloud failures. The CLI does not expose
// machine-readable error codes on its standard error stream, so matching on
// the stable phrases it prints is the only classification signal available.
var (
	notFoundMarkers = []string{
		"was not found",
		"not found",
		"HTTPError 404",
		"NOT_FOUND",
	}
	permissionMarkers = []string{
		"PERMISSION_DENIED",
		"HTTPError 403",
		"Permission denied",
	}
	existsMarkers = []string{
		"already exists",
		"alreadyExists",
		"HTTPError 409",
	}
)

func stderrMatches(err error, markers []string) bool {
	var cmdErr *CommandError
	if !stderrors.As(err, &cmdErr) {
		return false
	}
	for _, marker := range markers {
		if strings.Contains(cmdErr.Stderr, marker) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err indicates the named resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, errors.ErrCodeNotFound) || stderrMatches(err, notFoundMarkers)
}

// IsPermissionDenied reports whether err indicates missing permissions.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, errors.ErrCodeUnauthorized) || stderrMatches(err, permissionMarkers)
}

// IsAlreadyExists reports whether err indicates a name collision on create.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, errors.ErrCodeAlreadyExists) || stderrMatches(err, existsMarkers)
}
