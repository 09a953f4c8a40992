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

package site

import (
	"fmt"
	"strings"

	"github.com/stratus-tools/stratus/pkg/serializer"
)

const (
	defaultIndexPage = "index.html"
	defaultErrorPage = "404.html"
	defaultLocation  = "US"
)

// Config describes a static site hosted in a Cloud Storage bucket. It is
// usually loaded from a site.yaml manifest, with command line flags
// overriding individual fields.
type Config struct {
	// Bucket is the bucket holding the site content. Required. For direct
	// bucket-website serving this must match the site hostname.
	Bucket string `json:"bucket" yaml:"bucket"`

	// Project is the project that owns the bucket. Required when the bucket
	// has to be created.
	Project string `json:"project,omitempty" yaml:"project,omitempty"`

	// Dir is the local directory holding the site files.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// IndexPage is served for directory requests. Defaults to index.html.
	IndexPage string `json:"indexPage,omitempty" yaml:"indexPage,omitempty"`

	// ErrorPage is served for missing objects. Defaults to 404.html.
	ErrorPage string `json:"errorPage,omitempty" yaml:"errorPage,omitempty"`

	// Location is the bucket location used on creation. Defaults to US.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	// Exclude holds path patterns (path.Match syntax, matched against the
	// slash-separated relative path) skipped during upload.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Bucket) == "" {
		return fmt.Errorf("bucket is required")
	}
	if strings.TrimSpace(c.IndexPage) == "" {
		c.IndexPage = defaultIndexPage
	}
	if strings.TrimSpace(c.ErrorPage) == "" {
		c.ErrorPage = defaultErrorPage
	}
	if strings.TrimSpace(c.Location) == "" {
		c.Location = defaultLocation
	}
	return nil
}

// LoadManifest reads a site manifest from a YAML or JSON file.
func LoadManifest(path string) (*Config, error) {
	return serializer.FromFile[Config](path)
}

// UploadResult aggregates a sync run.
type UploadResult struct {
	Bucket   string `json:"bucket" yaml:"bucket"`
	Uploaded int    `json:"uploaded" yaml:"uploaded"`
	Skipped  int    `json:"skipped" yaml:"skipped"`
	Bytes    int64  `json:"bytes" yaml:"bytes"`
}
