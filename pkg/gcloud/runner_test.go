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
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratus-tools/stratus/pkg/errors"
)

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{
		Args:     []string{"compute", "addresses", "describe", "web-ip"},
		ExitCode: 1,
		Stderr:   "ERROR: resource was not found",
	}
	assert.Contains(t, err.Error(), "gcloud compute addresses describe web-ip")
	assert.Contains(t, err.Error(), "exit 1")
	assert.Contains(t, err.Error(), "was not found")
}

func TestCommandErrorUnwrap(t *testing.T) {
	cause := stderrors.New("exit status 1")
	err := &CommandError{Args: []string{"version"}, ExitCode: 1, cause: cause}
	assert.True(t, stderrors.Is(err, cause))
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name       string
		stderr     string
		notFound   bool
		denied     bool
		alreadyHas bool
	}{
		{
			name:     "resource absent",
			stderr:   "The resource 'projects/p/global/addresses/web-ip' was not found",
			notFound: true,
		},
		{
			name:     "api 404",
			stderr:   "HTTPError 404: The object is unknown",
			notFound: true,
		},
		{
			name:   "missing permission",
			stderr: "HTTPError 403: Required 'compute.sslCertificates.get' permission",
			denied: true,
		},
		{
			name:   "iam denial",
			stderr: "PERMISSION_DENIED: caller lacks role",
			denied: true,
		},
		{
			name:       "name collision",
			stderr:     "Could not create resource: already exists",
			alreadyHas: true,
		},
		{
			name:       "api 409",
			stderr:     "HTTPError 409: conflict",
			alreadyHas: true,
		},
		{
			name:   "unclassified",
			stderr: "quota exceeded for project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &CommandError{Args: []string{"x"}, ExitCode: 1, Stderr: tt.stderr}
			assert.Equal(t, tt.notFound, IsNotFound(err))
			assert.Equal(t, tt.denied, IsPermissionDenied(err))
			assert.Equal(t, tt.alreadyHas, IsAlreadyExists(err))
		})
	}
}

func TestRunReportsTimeout(t *testing.T) {
	sleep, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}
	r := &execRunner{path: sleep}

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err = r.Run(ctx, "5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeTimeout))
}

func TestClassifiersIgnoreOtherErrors(t *testing.T) {
	err := fmt.Errorf("plain failure")
	assert.False(t, IsNotFound(err))
	assert.False(t, IsPermissionDenied(err))
	assert.False(t, IsAlreadyExists(err))
}
