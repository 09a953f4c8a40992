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

package namecheck

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordlistContent = `# candidate project names
alpha-project

beta-project
  gamma-project
# commented-out-project
`

func TestParseWordlist(t *testing.T) {
	names, err := ParseWordlist([]byte(wordlistContent))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha-project", "beta-project", "gamma-project"}, names)
}

func TestParseWordlistEmpty(t *testing.T) {
	names, err := ParseWordlist(nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoadWordlistFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte(wordlistContent), 0o644))

	names, err := LoadWordlist(path)
	require.NoError(t, err)
	assert.Len(t, names, 3)
}

func TestLoadWordlistFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(wordlistContent))
	}))
	defer server.Close()

	names, err := LoadWordlist(server.URL + "/names.txt")
	require.NoError(t, err)
	assert.Len(t, names, 3)
}

func TestLoadWordlistMissingFile(t *testing.T) {
	_, err := LoadWordlist(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
