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

package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name   string            `json:"name" yaml:"name"`
	Count  int               `json:"count" yaml:"count"`
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

func TestFormatIsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{format: FormatJSON, want: false},
		{format: FormatYAML, want: false},
		{format: FormatTable, want: false},
		{format: Format("xml"), want: true},
		{format: Format(""), want: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsUnknown())
		})
	}
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	in := sample{Name: "web-bucket", Count: 3}
	require.NoError(t, w.Serialize(t.Context(), in))

	var out sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	in := sample{Name: "web-bucket", Count: 3, Labels: map[string]string{"env": "prod"}}
	require.NoError(t, w.Serialize(t.Context(), in))

	var out sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	in := sample{Name: "web-bucket", Count: 3, Labels: map[string]string{"env": "prod"}}
	require.NoError(t, w.Serialize(t.Context(), in))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "web-bucket")
	assert.Contains(t, out, "Labels.env")
}

func TestWriterTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(t.Context(), struct{}{}))
	assert.Contains(t, buf.String(), "<empty>")
}

func TestNewWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("bogus"), &buf)

	require.NoError(t, w.Serialize(t.Context(), sample{Name: "x"}))

	var out sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "x", out.Name)
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	w := NewFileWriterOrStdout(FormatYAML, path)

	require.NoError(t, w.Serialize(t.Context(), sample{Name: "file-bound"}))
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "file-bound"))
}

func TestWriterCloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
