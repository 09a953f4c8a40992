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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// ScriptParams feeds the helper script templates.
type ScriptParams struct {
	ProjectID  string
	OwnerEmail string
	Services   []string
}

const setprojTemplate = `#!/usr/bin/env bash
# Switch the local gcloud configuration to project {{.ProjectID}}.
set -euo pipefail

gcloud config set project {{.ProjectID}}
export GOOGLE_CLOUD_PROJECT={{.ProjectID}}

echo "active project: {{.ProjectID}}"
`

const ownerSetupTemplate = `#!/usr/bin/env bash
# One-time setup for the owner of project {{.ProjectID}}.
# Run this on the owner's machine after accepting the project invite.
set -euo pipefail

{{if .OwnerEmail}}gcloud auth login {{.OwnerEmail}}
{{else}}gcloud auth login
{{end}}gcloud config set project {{.ProjectID}}
{{range .Services}}gcloud services enable {{.}}
{{end}}
echo "project {{.ProjectID}} is ready"
`

var scriptTemplates = map[string]*template.Template{
	"setproj.sh":     template.Must(template.New("setproj.sh").Parse(setprojTemplate)),
	"owner-setup.sh": template.Must(template.New("owner-setup.sh").Parse(ownerSetupTemplate)),
}

// WriteHelperScripts renders the helper scripts into dir and returns the
// written paths. The directory is created if missing and the scripts are
// marked executable.
func WriteHelperScripts(dir string, params *ScriptParams) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating script directory %q: %w", dir, err)
	}

	paths := make([]string, 0, len(scriptTemplates))
	for _, name := range []string{"setproj.sh", "owner-setup.sh"} {
		var buf bytes.Buffer
		if err := scriptTemplates[name].Execute(&buf, params); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o755); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
