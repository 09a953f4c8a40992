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

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/stratus-tools/stratus/pkg/errors"
	"github.com/stratus-tools/stratus/pkg/gcloud"
	"github.com/stratus-tools/stratus/pkg/serializer"
)

// Shared flags used across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to file (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name: "format",
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars("STRATUS_FORMAT"),
	}

	projectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Google Cloud project ID (default: active gcloud configuration)",
		Sources: cli.EnvVars("STRATUS_PROJECT", "GOOGLE_CLOUD_PROJECT"),
	}
)

// parseOutputFormat validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", format)
	}
	return format, nil
}

// writeOutput serializes data per the output and format flags.
func writeOutput(ctx context.Context, cmd *cli.Command, data any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		_ = w.Close()
	}()
	return w.Serialize(ctx, data)
}

// newGcloudClient builds a gcloud CLI client for the flagged project.
func newGcloudClient(cmd *cli.Command) (*gcloud.Client, error) {
	runner, err := gcloud.NewRunner()
	if err != nil {
		return nil, err
	}
	return gcloud.NewClient(runner, cmd.String("project")), nil
}

// credentialError reports a failure to construct a Google Cloud API client,
// pointing at the usual missing-ADC cause.
func credentialError(err error) error {
	return errors.Wrap(errors.ErrCodePrerequisite,
		"failed to create Google Cloud client, run `gcloud auth application-default login` to set up credentials",
		err)
}
