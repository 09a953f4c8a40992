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

package project

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHelperScripts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scripts")

	paths, err := WriteHelperScripts(dir, &ScriptParams{
		ProjectID:  "demo-project",
		OwnerEmail: "owner@example.com",
		Services:   []string{"storage.googleapis.com", "compute.googleapis.com"},
	})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	setproj, err := os.ReadFile(filepath.Join(dir, "setproj.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(setproj), "#!/usr/bin/env bash")
	assert.Contains(t, string(setproj), "gcloud config set project demo-project")
	assert.Contains(t, string(setproj), "GOOGLE_CLOUD_PROJECT=demo-project")

	owner, err := os.ReadFile(filepath.Join(dir, "owner-setup.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(owner), "gcloud auth login owner@example.com")
	assert.Contains(t, string(owner), "gcloud services enable storage.googleapis.com")
	assert.Contains(t, string(owner), "gcloud services enable compute.googleapis.com")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "setproj.sh"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}

func TestWriteHelperScriptsNoOwnerEmail(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteHelperScripts(dir, &ScriptParams{ProjectID: "demo-project"})
	require.NoError(t, err)

	owner, err := os.ReadFile(filepath.Join(dir, "owner-setup.sh"))
	require.NoError(t, err)
	assert.Contains(t, string(owner), "gcloud auth login\n")
}
