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
	"fmt"
	"strings"

	"github.com/stratus-tools/stratus/pkg/namecheck"
)

// suffixLen is the length of the generated uniqueness suffix, hyphen
// included.
const suffixLen = 7

// DefaultServices are enabled on every new project unless overridden.
var DefaultServices = []string{
	"serviceusage.googleapis.com",
	"storage.googleapis.com",
	"compute.googleapis.com",
}

// Options describes a project to provision.
type Options struct {
	// ProjectID is the requested project ID. Required.
	ProjectID string `json:"projectID" yaml:"projectID"`

	// DisplayName defaults to the project ID.
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`

	// Parent is the owning resource ("organizations/123" or "folders/456").
	// Empty creates a standalone project.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`

	// RandomSuffix appends a random hex suffix to the ID for uniqueness.
	RandomSuffix bool `json:"randomSuffix,omitempty" yaml:"randomSuffix,omitempty"`

	// BillingAccount, when set, is linked after creation
	// ("billingAccounts/XXXXXX-XXXXXX-XXXXXX").
	BillingAccount string `json:"billingAccount,omitempty" yaml:"billingAccount,omitempty"`

	// Services are enabled after creation. Defaults to DefaultServices.
	Services []string `json:"services,omitempty" yaml:"services,omitempty"`

	// ScriptDir, when set, receives the generated helper scripts.
	ScriptDir string `json:"scriptDir,omitempty" yaml:"scriptDir,omitempty"`

	// OwnerEmail is embedded in the generated owner setup script.
	OwnerEmail string `json:"ownerEmail,omitempty" yaml:"ownerEmail,omitempty"`
}

// Validate checks the requested ID against the platform naming rules and
// applies defaults. With RandomSuffix the base ID must leave room for the
// suffix within the project ID length limit.
func (o *Options) Validate() error {
	id := strings.TrimSpace(o.ProjectID)
	if id == "" {
		return fmt.Errorf("project ID is required")
	}
	o.ProjectID = id

	if reasons := namecheck.ValidateProjectID(id); len(reasons) > 0 {
		return fmt.Errorf("invalid project ID %q: %s", id, strings.Join(reasons, "; "))
	}
	if o.RandomSuffix && len(id)+suffixLen > 30 {
		return fmt.Errorf("project ID %q too long to carry a random suffix", id)
	}

	if strings.TrimSpace(o.DisplayName) == "" {
		o.DisplayName = id
	}
	if len(o.Services) == 0 {
		o.Services = DefaultServices
	}
	return nil
}

// Result aggregates a provisioning run.
type Result struct {
	// ProjectID is the final ID, suffix included.
	ProjectID     string   `json:"projectID" yaml:"projectID"`
	DisplayName   string   `json:"displayName" yaml:"displayName"`
	BillingLinked bool     `json:"billingLinked" yaml:"billingLinked"`
	Services      []string `json:"services,omitempty" yaml:"services,omitempty"`
	Scripts       []string `json:"scripts,omitempty" yaml:"scripts,omitempty"`
}
