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

	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	"cloud.google.com/go/storage"
	"github.com/urfave/cli/v3"

	"github.com/stratus-tools/stratus/pkg/defaults"
	"github.com/stratus-tools/stratus/pkg/errors"
	"github.com/stratus-tools/stratus/pkg/namecheck"
)

const defaultWordlist = "project-names.txt"

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check name candidates for validity and availability",
		Description: `Check candidate names against the Google Cloud naming rules and, unless
--local-only is given, probe the live APIs to see whether valid names are
still free. Candidates come from command arguments or from a wordlist file
or URL (one name per line, # comments and blank lines skipped).

Probes are paced with a delay between requests to stay clear of API rate
limits.`,
		Commands: []*cli.Command{
			checkProjectsCmd(),
			checkBucketsCmd(),
		},
	}
}

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "wordlist",
			Aliases: []string{"w"},
			Usage:   "Wordlist file path or URL, one candidate per line",
			Value:   defaultWordlist,
		},
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "Delay between availability probes",
			Value: defaults.CheckDelay,
		},
		&cli.BoolFlag{
			Name:  "local-only",
			Usage: "Apply naming rules only, skip availability probes",
		},
		outputFlag,
		formatFlag,
	}
}

// checkNames resolves the candidate list from args or the wordlist flag.
func checkNames(cmd *cli.Command) ([]string, error) {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return args, nil
	}
	return namecheck.LoadWordlist(cmd.String("wordlist"))
}

func runCheck(ctx context.Context, cmd *cli.Command, rules namecheck.Rules, prober namecheck.Prober) error {
	names, err := checkNames(cmd)
	if err != nil {
		return err
	}

	checker := namecheck.NewChecker(rules,
		namecheck.WithProber(prober),
		namecheck.WithDelay(cmd.Duration("delay")),
		namecheck.WithLocalOnly(cmd.Bool("local-only")))

	report, err := checker.Check(ctx, names)
	if err != nil {
		return fmt.Errorf("name check failed: %w", err)
	}
	if err := writeOutput(ctx, cmd, report); err != nil {
		return err
	}

	// Rule violations and failed probes are a failure outcome even though
	// the run itself completed; the report is still written first.
	if n := report.Summary[namecheck.VerdictInvalid]; n > 0 {
		return errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("%d of %d names violate the naming rules", n, report.Checked))
	}
	if n := report.Summary[namecheck.VerdictError]; n > 0 {
		return errors.New(errors.ErrCodeInternal,
			fmt.Sprintf("%d of %d availability probes failed", n, report.Checked))
	}
	return nil
}

func checkProjectsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "projects",
		EnableShellCompletion: true,
		Usage:                 "Check project ID candidates",
		ArgsUsage:             "[name...]",
		Description: `Check candidate project IDs. A clean not-found from the Resource Manager
API means the ID is available; a visible project or a permission error
means it is taken.

# Examples

Check all candidates in the default wordlist:
  stratus check projects

Check specific names with a slower probe rate:
  stratus check projects --delay 1s my-new-project my-other-project

Rules only, no API calls:
  stratus check projects --local-only my-new-project`,
		Flags: checkFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var prober namecheck.Prober
			if !cmd.Bool("local-only") {
				client, err := resourcemanager.NewProjectsClient(ctx)
				if err != nil {
					return credentialError(err)
				}
				defer func() {
					_ = client.Close()
				}()
				prober = namecheck.NewProjectProber(client)
			}
			return runCheck(ctx, cmd, namecheck.ValidateProjectID, prober)
		},
	}
}

func checkBucketsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "buckets",
		EnableShellCompletion: true,
		Usage:                 "Check bucket name candidates",
		ArgsUsage:             "[name...]",
		Description: `Check candidate bucket names. Bucket names are global across all projects;
a bucket visible anywhere, including one the caller cannot access, means
the name is taken.`,
		Flags: checkFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var prober namecheck.Prober
			if !cmd.Bool("local-only") {
				client, err := storage.NewClient(ctx)
				if err != nil {
					return credentialError(err)
				}
				defer func() {
					_ = client.Close()
				}()
				prober = namecheck.NewBucketProberFromClient(client)
			}
			return runCheck(ctx, cmd, namecheck.ValidateBucketName, prober)
		},
	}
}
