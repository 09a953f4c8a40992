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

	"github.com/urfave/cli/v3"

	"github.com/stratus-tools/stratus/pkg/lb"
)

func lbCmd() *cli.Command {
	return &cli.Command{
		Name:                  "lb",
		EnableShellCompletion: true,
		Usage:                 "Manage the HTTPS load balancer in front of a site bucket",
		Description: `Provision and manage the Google Cloud HTTPS load balancer chain that serves
a static website bucket over HTTPS with a Google-managed certificate:

  1. Global IPv4 address
  2. Managed SSL certificate for the site domains
  3. Backend bucket pointing at the content bucket
  4. URL map
  5. Target HTTPS proxy
  6. Global forwarding rule on port 443

Setup is idempotent: resources that already exist are kept as is, missing
ones are created. Managed certificates take a while to provision; use
"lb status" to watch for the certificate to turn ACTIVE after pointing the
domain's A record at the reserved address.`,
		Commands: []*cli.Command{
			lbSetupCmd(),
			lbStatusCmd(),
			lbTeardownCmd(),
		},
	}
}

func lbFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "bucket",
			Aliases:  []string{"b"},
			Usage:    "Content bucket the load balancer serves",
			Required: true,
			Sources:  cli.EnvVars("STRATUS_BUCKET"),
		},
		&cli.StringSliceFlag{
			Name:    "domain",
			Aliases: []string{"d"},
			Usage:   "Site hostname for the managed certificate (repeatable)",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "Name prefix for the created resources",
			Value: "web",
		},
		projectFlag,
		outputFlag,
		formatFlag,
	}
	return append(flags, extra...)
}

func lbConfigFromCmd(cmd *cli.Command) *lb.Config {
	return &lb.Config{
		Bucket:     cmd.String("bucket"),
		Domains:    cmd.StringSlice("domain"),
		NamePrefix: cmd.String("prefix"),
		EnableCDN:  cmd.Bool("enable-cdn"),
		EnableHTTP: cmd.Bool("enable-http"),
	}
}

func lbSetupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "setup",
		EnableShellCompletion: true,
		Usage:                 "Provision the load balancer resource chain",
		Description: `Create the load balancer resources in dependency order. Existing resources
are reported and skipped. A failure stops the run and leaves the resources
created so far in place; rerunning after fixing the cause picks up where it
stopped.

# Examples

Serve bucket www-example-com over HTTPS for example.com:
  stratus lb setup --bucket www-example-com --domain example.com

Also answer plain HTTP on port 80 and enable Cloud CDN:
  stratus lb setup --bucket www-example-com --domain example.com \
    --enable-http --enable-cdn

Preview the commands without executing:
  stratus lb setup --bucket www-example-com --domain example.com --dry-run`,
		Flags: lbFlags(
			&cli.BoolFlag{
				Name:  "enable-cdn",
				Usage: "Enable Cloud CDN on the backend bucket",
			},
			&cli.BoolFlag{
				Name:  "enable-http",
				Usage: "Also serve plain HTTP on port 80",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the commands that would run without executing them",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newGcloudClient(cmd)
			if err != nil {
				return err
			}

			prov := lb.New(client, lb.WithDryRun(cmd.Bool("dry-run")))
			result, err := prov.Provision(ctx, lbConfigFromCmd(cmd))
			if err != nil {
				return fmt.Errorf("load balancer setup failed: %w", err)
			}
			return writeOutput(ctx, cmd, result)
		},
	}
}

func lbStatusCmd() *cli.Command {
	return &cli.Command{
		Name:                  "status",
		EnableShellCompletion: true,
		Usage:                 "Report the state of the load balancer resources",
		Description: `Describe every resource in the chain and report the reserved address and
the managed certificate provisioning state. The report is ready=true once
all resources exist and the certificate is ACTIVE.`,
		Flags: lbFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newGcloudClient(cmd)
			if err != nil {
				return err
			}

			report, err := lb.New(client).Status(ctx, lbConfigFromCmd(cmd))
			if err != nil {
				return fmt.Errorf("load balancer status failed: %w", err)
			}
			return writeOutput(ctx, cmd, report)
		},
	}
}

func lbTeardownCmd() *cli.Command {
	return &cli.Command{
		Name:                  "teardown",
		EnableShellCompletion: true,
		Usage:                 "Remove the load balancer resource chain",
		Description: `Delete the load balancer resources in reverse creation order. Resources
that are already gone are skipped. The content bucket itself is not touched.`,
		Flags: lbFlags(
			&cli.BoolFlag{
				Name:  "continue-on-error",
				Usage: "Keep deleting remaining resources after a failure",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the commands that would run without executing them",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := newGcloudClient(cmd)
			if err != nil {
				return err
			}

			prov := lb.New(client, lb.WithDryRun(cmd.Bool("dry-run")))
			result, err := prov.Teardown(ctx, lbConfigFromCmd(cmd), lb.TeardownOptions{
				ContinueOnError: cmd.Bool("continue-on-error"),
			})
			if err != nil {
				return fmt.Errorf("load balancer teardown failed: %w", err)
			}
			return writeOutput(ctx, cmd, result)
		},
	}
}
