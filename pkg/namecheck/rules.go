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
	"fmt"
	"net"
	"strings"
)

const (
	projectIDMinLen = 6
	projectIDMaxLen = 30

	bucketMinLen       = 3
	bucketMaxLen       = 63
	bucketDottedMaxLen = 222
)

// ValidateProjectID checks a candidate against the project ID naming rules.
// It returns one reason per violated rule; an empty slice means valid.
func ValidateProjectID(id string) []string {
	var reasons []string

	if len(id) < projectIDMinLen || len(id) > projectIDMaxLen {
		reasons = append(reasons,
			fmt.Sprintf("length must be %d to %d characters, got %d",
				projectIDMinLen, projectIDMaxLen, len(id)))
	}
	if id != "" && !isLowerLetter(id[0]) {
		reasons = append(reasons, "must start with a lowercase letter")
	}
	if strings.HasSuffix(id, "-") {
		reasons = append(reasons, "must not end with a hyphen")
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if !isLowerLetter(c) && !isDigit(c) && c != '-' {
			reasons = append(reasons,
				fmt.Sprintf("invalid character %q, only lowercase letters, digits and hyphens are allowed", c))
			break
		}
	}
	if strings.Contains(id, "google") {
		reasons = append(reasons, "must not contain the restricted substring \"google\"")
	}
	if strings.Contains(id, "ssl") {
		reasons = append(reasons, "must not contain the restricted substring \"ssl\"")
	}
	if strings.HasPrefix(id, "goog") && !strings.Contains(id, "google") {
		reasons = append(reasons, "must not start with the restricted prefix \"goog\"")
	}

	return reasons
}

// ValidateBucketName checks a candidate against the bucket naming rules.
// It returns one reason per violated rule; an empty slice means valid.
func ValidateBucketName(name string) []string {
	var reasons []string

	dotted := strings.Contains(name, ".")
	maxLen := bucketMaxLen
	if dotted {
		maxLen = bucketDottedMaxLen
	}
	if len(name) < bucketMinLen || len(name) > maxLen {
		reasons = append(reasons,
			fmt.Sprintf("length must be %d to %d characters, got %d", bucketMinLen, maxLen, len(name)))
	}
	if name != "" && !isAlnum(name[0]) {
		reasons = append(reasons, "must start with a lowercase letter or digit")
	}
	if name != "" && !isAlnum(name[len(name)-1]) {
		reasons = append(reasons, "must end with a lowercase letter or digit")
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isAlnum(c) && c != '-' && c != '_' && c != '.' {
			reasons = append(reasons,
				fmt.Sprintf("invalid character %q, only lowercase letters, digits, hyphens, underscores and dots are allowed", c))
			break
		}
	}
	if dotted {
		for _, part := range strings.Split(name, ".") {
			if len(part) == 0 || len(part) > bucketMaxLen {
				reasons = append(reasons,
					fmt.Sprintf("dotted component %q must be 1 to %d characters", part, bucketMaxLen))
				break
			}
		}
	}
	if strings.HasPrefix(name, "goog") {
		reasons = append(reasons, "must not start with the restricted prefix \"goog\"")
	} else if strings.Contains(name, "google") {
		reasons = append(reasons, "must not contain the restricted substring \"google\"")
	}
	if looksLikeIPv4(name) {
		reasons = append(reasons, "must not be formatted as an IP address")
	}

	return reasons
}

// looksLikeIPv4 reports whether the name is a dotted-decimal IPv4 address.
func looksLikeIPv4(name string) bool {
	if strings.Count(name, ".") != 3 {
		return false
	}
	ip := net.ParseIP(name)
	return ip != nil && ip.To4() != nil
}

func isLowerLetter(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool       { return c >= '0' && c <= '9' }
func isAlnum(c byte) bool       { return isLowerLetter(c) || isDigit(c) }
