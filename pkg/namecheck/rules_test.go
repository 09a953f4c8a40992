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
	"strings"
	"testing"
)

func TestValidateProjectID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{name: "valid simple", id: "my-project", valid: true},
		{name: "valid with digits", id: "proj42-test", valid: true},
		{name: "minimum length", id: "abcdef", valid: true},
		{name: "maximum length", id: strings.Repeat("a", 30), valid: true},
		{name: "too short", id: "abc", valid: false},
		{name: "too long", id: strings.Repeat("a", 31), valid: false},
		{name: "starts with digit", id: "1project", valid: false},
		{name: "starts with hyphen", id: "-project", valid: false},
		{name: "ends with hyphen", id: "project-", valid: false},
		{name: "uppercase", id: "MyProject", valid: false},
		{name: "underscore", id: "my_project", valid: false},
		{name: "contains google", id: "mygoogleproj", valid: false},
		{name: "contains ssl", id: "my-ssl-proxy", valid: false},
		{name: "goog prefix", id: "goog-project", valid: false},
		{name: "empty", id: "", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reasons := ValidateProjectID(tc.id)
			if tc.valid && len(reasons) > 0 {
				t.Errorf("expected %q valid, got reasons: %v", tc.id, reasons)
			}
			if !tc.valid && len(reasons) == 0 {
				t.Errorf("expected %q invalid, got no reasons", tc.id)
			}
		})
	}
}

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		valid  bool
	}{
		{name: "valid simple", bucket: "my-bucket", valid: true},
		{name: "valid underscore", bucket: "my_bucket", valid: true},
		{name: "valid domain style", bucket: "www.example.com", valid: true},
		{name: "minimum length", bucket: "abc", valid: true},
		{name: "maximum plain length", bucket: strings.Repeat("a", 63), valid: true},
		{name: "too short", bucket: "ab", valid: false},
		{name: "too long plain", bucket: strings.Repeat("a", 64), valid: false},
		{name: "dotted allows longer", bucket: strings.Repeat("a", 60) + "." + strings.Repeat("b", 60), valid: true},
		{name: "dotted component too long", bucket: strings.Repeat("a", 64) + ".com", valid: false},
		{name: "consecutive dots", bucket: "my..bucket", valid: false},
		{name: "starts with hyphen", bucket: "-bucket", valid: false},
		{name: "ends with dot", bucket: "bucket.", valid: false},
		{name: "uppercase", bucket: "MyBucket", valid: false},
		{name: "goog prefix", bucket: "goog-files", valid: false},
		{name: "contains google", bucket: "my-google-files", valid: false},
		{name: "ip address", bucket: "192.168.5.4", valid: false},
		{name: "ip-like but not ip", bucket: "192.168.5.bucket", valid: true},
		{name: "empty", bucket: "", valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reasons := ValidateBucketName(tc.bucket)
			if tc.valid && len(reasons) > 0 {
				t.Errorf("expected %q valid, got reasons: %v", tc.bucket, reasons)
			}
			if !tc.valid && len(reasons) == 0 {
				t.Errorf("expected %q invalid, got no reasons", tc.bucket)
			}
		})
	}
}
