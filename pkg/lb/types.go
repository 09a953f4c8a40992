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

package lb

import (
	"fmt"
	"strings"
)

// Resource kinds in creation order.
const (
	KindAddress        = "address"
	KindCertificate    = "ssl-certificate"
	KindBackendBucket  = "backend-bucket"
	KindURLMap         = "url-map"
	KindHTTPSProxy     = "target-https-proxy"
	KindForwardingRule = "forwarding-rule"
	KindHTTPProxy      = "target-http-proxy"
)

// defaultNamePrefix is used when the caller does not name the resource set.
const defaultNamePrefix = "web"

// Config describes the HTTPS load balancer fronting a GCS bucket.
type Config struct {
	// Bucket is the GCS bucket serving the site content. Required.
	Bucket string `json:"bucket" yaml:"bucket"`

	// Domains are the hostnames for the managed SSL certificate. At least
	// one is required.
	Domains []string `json:"domains" yaml:"domains"`

	// NamePrefix prefixes every created resource name. Defaults to "web".
	NamePrefix string `json:"namePrefix,omitempty" yaml:"namePrefix,omitempty"`

	// EnableCDN turns on Cloud CDN for the backend bucket.
	EnableCDN bool `json:"enableCDN,omitempty" yaml:"enableCDN,omitempty"`

	// EnableHTTP also serves plain HTTP on port 80 through the same URL map.
	EnableHTTP bool `json:"enableHTTP,omitempty" yaml:"enableHTTP,omitempty"`
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Bucket) == "" {
		return fmt.Errorf("bucket is required")
	}
	for _, d := range c.Domains {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("empty domain")
		}
	}
	if strings.TrimSpace(c.NamePrefix) == "" {
		c.NamePrefix = defaultNamePrefix
	}
	return nil
}

// Resource names derived from the prefix. Kept stable so repeated runs
// find the resources they created before.

func (c *Config) AddressName() string       { return c.NamePrefix + "-ip" }
func (c *Config) CertificateName() string   { return c.NamePrefix + "-cert" }
func (c *Config) BackendBucketName() string { return c.NamePrefix + "-backend" }
func (c *Config) URLMapName() string        { return c.NamePrefix + "-url-map" }
func (c *Config) HTTPSProxyName() string    { return c.NamePrefix + "-https-proxy" }
func (c *Config) RuleName() string          { return c.NamePrefix + "-https-rule" }
func (c *Config) HTTPProxyName() string     { return c.NamePrefix + "-http-proxy" }
func (c *Config) HTTPRuleName() string      { return c.NamePrefix + "-http-rule" }

// StepAction describes what Provision did for one resource.
type StepAction string

const (
	// ActionCreated means the resource was created by this run.
	ActionCreated StepAction = "created"
	// ActionExists means the resource was already present and was skipped.
	ActionExists StepAction = "exists"
	// ActionPlanned means dry-run mode printed the command without executing.
	ActionPlanned StepAction = "planned"
	// ActionDeleted means teardown removed the resource.
	ActionDeleted StepAction = "deleted"
	// ActionAbsent means teardown found nothing to remove.
	ActionAbsent StepAction = "absent"
	// ActionFailed means the operation on the resource failed.
	ActionFailed StepAction = "failed"
)

// StepResult records the outcome for a single resource.
type StepResult struct {
	Kind   string     `json:"kind" yaml:"kind"`
	Name   string     `json:"name" yaml:"name"`
	Action StepAction `json:"action" yaml:"action"`
	// Command is populated in dry-run mode with the invocation that would run.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result aggregates a Provision or Teardown run.
type Result struct {
	Project string       `json:"project,omitempty" yaml:"project,omitempty"`
	Bucket  string       `json:"bucket" yaml:"bucket"`
	Domains []string     `json:"domains" yaml:"domains"`
	Steps   []StepResult `json:"steps" yaml:"steps"`
	Created int          `json:"created" yaml:"created"`
	Existed int          `json:"existed" yaml:"existed"`
}

// ResourceStatus is one row of a Status report.
type ResourceStatus struct {
	Kind    string `json:"kind" yaml:"kind"`
	Name    string `json:"name" yaml:"name"`
	Present bool   `json:"present" yaml:"present"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// StatusReport describes the current state of the load balancer resources.
type StatusReport struct {
	Project string `json:"project,omitempty" yaml:"project,omitempty"`
	// Address is the reserved global IP, once present.
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	// CertificateStatus is the managed certificate provisioning state
	// (PROVISIONING, ACTIVE, ...), once present.
	CertificateStatus string           `json:"certificateStatus,omitempty" yaml:"certificateStatus,omitempty"`
	Resources         []ResourceStatus `json:"resources" yaml:"resources"`
	// Ready is true when every resource exists and the certificate is ACTIVE.
	Ready bool `json:"ready" yaml:"ready"`
}
