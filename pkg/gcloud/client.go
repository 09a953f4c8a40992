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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stratus-tools/stratus/pkg/errors"
)

// Client issues describe/create/delete commands through a Runner, injecting
// the project flag and output options every invocation needs.
type Client struct {
	runner  Runner
	project string
}

// NewClient creates a Client bound to a project. The project may be empty,
// in which case gcloud falls back to its configured default.
func NewClient(runner Runner, project string) *Client {
	return &Client{
		runner:  runner,
		project: project,
	}
}

// Project returns the project the client is bound to.
func (c *Client) Project() string {
	return c.project
}

// args returns the invocation arguments with the project flag and any extra
// flags appended.
func (c *Client) args(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra)+1)
	out = append(out, base...)
	if c.project != "" {
		out = append(out, "--project="+c.project)
	}
	out = append(out, extra...)
	return out
}

// Describe runs a describe-style command and decodes its JSON output.
// A resource that does not exist is reported as ErrCodeNotFound so callers
// can branch into creation.
func (c *Client) Describe(ctx context.Context, base ...string) (map[string]any, error) {
	full := c.args(base, "--format=json")

	output, err := c.runner.Run(ctx, full...)
	if err != nil {
		if stderrMatches(err, notFoundMarkers) {
			return nil, errors.Wrap(errors.ErrCodeNotFound,
				fmt.Sprintf("resource not found: %s", strings.Join(base, " ")), err)
		}
		if stderrMatches(err, permissionMarkers) {
			return nil, errors.Wrap(errors.ErrCodeUnauthorized,
				fmt.Sprintf("permission denied: %s", strings.Join(base, " ")), err)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("describe failed: %s", strings.Join(base, " ")), err)
	}

	result := make(map[string]any)
	if len(output) > 0 {
		if err := json.Unmarshal(output, &result); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to parse gcloud output", err)
		}
	}
	return result, nil
}

// Create runs a mutating command in quiet mode. Name collisions are reported
// as ErrCodeAlreadyExists.
func (c *Client) Create(ctx context.Context, base ...string) error {
	full := c.args(base, "--quiet")

	if _, err := c.runner.Run(ctx, full...); err != nil {
		if stderrMatches(err, existsMarkers) {
			return errors.Wrap(errors.ErrCodeAlreadyExists,
				fmt.Sprintf("resource already exists: %s", strings.Join(base, " ")), err)
		}
		if stderrMatches(err, permissionMarkers) {
			return errors.Wrap(errors.ErrCodeUnauthorized,
				fmt.Sprintf("permission denied: %s", strings.Join(base, " ")), err)
		}
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("create failed: %s", strings.Join(base, " ")), err)
	}
	return nil
}

// Delete runs a delete-style command in quiet mode. Deleting an absent
// resource is reported as ErrCodeNotFound so teardown can skip it.
func (c *Client) Delete(ctx context.Context, base ...string) error {
	full := c.args(base, "--quiet")

	if _, err := c.runner.Run(ctx, full...); err != nil {
		if stderrMatches(err, notFoundMarkers) {
			return errors.Wrap(errors.ErrCodeNotFound,
				fmt.Sprintf("resource not found: %s", strings.Join(base, " ")), err)
		}
		if stderrMatches(err, permissionMarkers) {
			return errors.Wrap(errors.ErrCodeUnauthorized,
				fmt.Sprintf("permission denied: %s", strings.Join(base, " ")), err)
		}
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("delete failed: %s", strings.Join(base, " ")), err)
	}
	return nil
}

// CommandLine renders the full mutating invocation for display, used by
// dry-run modes to show what Create or Delete would execute. It carries the
// same injected flags as the executing path, quiet mode included, so the
// rendered command runs non-interactively when pasted.
func (c *Client) CommandLine(base ...string) string {
	return binaryName + " " + strings.Join(c.args(base, "--quiet"), " ")
}
