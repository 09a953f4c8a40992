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

	billing "cloud.google.com/go/billing/apiv1"
	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	serviceusage "cloud.google.com/go/serviceusage/apiv1"
	"github.com/urfave/cli/v3"

	"github.com/stratus-tools/stratus/pkg/project"
)

func projectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "project",
		EnableShellCompletion: true,
		Usage:                 "Provision Google Cloud projects",
		Commands: []*cli.Command{
			projectCreateCmd(),
		},
	}
}

func projectCreateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "create",
		EnableShellCompletion: true,
		Usage:                 "Create a project with billing, APIs, and helper scripts",
		ArgsUsage:             "project-id",
		Description: `Create a project and apply its baseline configuration: link a billing
account, enable a set of APIs, and generate helper scripts for the new
project owner (setproj.sh to switch the local gcloud configuration,
owner-setup.sh for the owner's first login).

The project is created first; if a later step fails the project stays and
the error is reported.

# Examples

Create a standalone project with the default APIs:
  stratus project create my-sandbox-2026

Create under a folder with billing and extra APIs:
  stratus project create my-sandbox-2026 \
    --parent folders/1234567890 \
    --billing-account billingAccounts/000000-AAAAAA-BBBBBB \
    --service run.googleapis.com

Popular base name, let the tool pick a unique suffix:
  stratus project create sandbox --random-suffix --script-dir ./scripts`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Project display name (default: the project ID)",
			},
			&cli.StringFlag{
				Name:  "parent",
				Usage: "Owning resource (organizations/ID or folders/ID)",
			},
			&cli.StringFlag{
				Name:    "billing-account",
				Usage:   "Billing account to link (billingAccounts/XXXXXX-XXXXXX-XXXXXX)",
				Sources: cli.EnvVars("STRATUS_BILLING_ACCOUNT"),
			},
			&cli.StringSliceFlag{
				Name:  "service",
				Usage: "API to enable on the new project (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "random-suffix",
				Usage: "Append a random suffix to the project ID for uniqueness",
			},
			&cli.StringFlag{
				Name:  "script-dir",
				Usage: "Directory receiving the generated helper scripts",
			},
			&cli.StringFlag{
				Name:  "owner",
				Usage: "Owner email embedded in the generated setup script",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one project-id argument")
			}

			prov, closeClients, err := newProjectProvisioner(ctx)
			if err != nil {
				return err
			}
			defer closeClients()

			opts := &project.Options{
				ProjectID:      cmd.Args().First(),
				DisplayName:    cmd.String("name"),
				Parent:         cmd.String("parent"),
				RandomSuffix:   cmd.Bool("random-suffix"),
				BillingAccount: cmd.String("billing-account"),
				Services:       cmd.StringSlice("service"),
				ScriptDir:      cmd.String("script-dir"),
				OwnerEmail:     cmd.String("owner"),
			}

			result, err := prov.Provision(ctx, opts)
			if err != nil {
				return fmt.Errorf("project create failed: %w", err)
			}
			return writeOutput(ctx, cmd, result)
		},
	}
}

func newProjectProvisioner(ctx context.Context) (*project.Provisioner, func(), error) {
	projects, err := resourcemanager.NewProjectsClient(ctx)
	if err != nil {
		return nil, nil, credentialError(err)
	}
	billingClient, err := billing.NewCloudBillingClient(ctx)
	if err != nil {
		_ = projects.Close()
		return nil, nil, credentialError(err)
	}
	services, err := serviceusage.NewClient(ctx)
	if err != nil {
		_ = projects.Close()
		_ = billingClient.Close()
		return nil, nil, credentialError(err)
	}

	clients := &project.Clients{
		Projects: projects,
		Billing:  billingClient,
		Services: services,
	}
	closeAll := func() {
		_ = projects.Close()
		_ = billingClient.Close()
		_ = services.Close()
	}
	return project.NewProvisioner(clients, clients, clients), closeAll, nil
}
