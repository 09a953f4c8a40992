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

	"cloud.google.com/go/storage"
	"github.com/urfave/cli/v3"

	"github.com/stratus-tools/stratus/pkg/site"
)

func siteCmd() *cli.Command {
	return &cli.Command{
		Name:                  "site",
		EnableShellCompletion: true,
		Usage:                 "Host a static website in a Cloud Storage bucket",
		Description: `Deploy a static website to Cloud Storage: create the bucket with website
configuration, sync the local content into it, and make it publicly
readable.

Settings come from flags or from a site.yaml manifest; flags override
manifest values. For direct bucket-website serving the bucket name must
match the site hostname (e.g. www.example.com). To serve over HTTPS put
the load balancer from "stratus lb" in front of the bucket instead.`,
		Commands: []*cli.Command{
			siteDeployCmd(),
			sitePublishCmd(),
		},
	}
}

func siteFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "bucket",
			Aliases: []string{"b"},
			Usage:   "Bucket holding the site content",
			Sources: cli.EnvVars("STRATUS_BUCKET"),
		},
		&cli.StringFlag{
			Name:    "manifest",
			Aliases: []string{"f"},
			Usage:   "Path to a site.yaml manifest",
		},
		projectFlag,
		outputFlag,
		formatFlag,
	}
	return append(flags, extra...)
}

// siteConfigFromCmd merges the optional manifest with flag overrides.
func siteConfigFromCmd(cmd *cli.Command) (*site.Config, error) {
	cfg := &site.Config{}
	if path := cmd.String("manifest"); path != "" {
		loaded, err := site.LoadManifest(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load site manifest: %w", err)
		}
		cfg = loaded
	}

	if v := cmd.String("bucket"); v != "" {
		cfg.Bucket = v
	}
	if v := cmd.String("project"); v != "" {
		cfg.Project = v
	}
	if v := cmd.String("dir"); v != "" {
		cfg.Dir = v
	}
	if v := cmd.String("index-page"); v != "" {
		cfg.IndexPage = v
	}
	if v := cmd.String("error-page"); v != "" {
		cfg.ErrorPage = v
	}
	if v := cmd.String("location"); v != "" {
		cfg.Location = v
	}
	if v := cmd.StringSlice("exclude"); len(v) > 0 {
		cfg.Exclude = v
	}
	return cfg, nil
}

func newStore(ctx context.Context, bucket string) (site.Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, credentialError(err)
	}
	return site.NewStore(client, bucket), nil
}

func siteDeployCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		Usage:                 "Create the bucket if needed and sync the site content",
		Description: `Ensure the bucket exists with website configuration, then upload the local
directory. Unchanged files (same size and checksum) are skipped. With
--public the content is also made world readable.

# Examples

Deploy the ./public directory to bucket www.example.com:
  stratus site deploy --bucket www.example.com --dir ./public --public

Deploy from a manifest:
  stratus site deploy -f site.yaml`,
		Flags: siteFlags(
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Local directory holding the site files",
			},
			&cli.StringFlag{
				Name:  "index-page",
				Usage: "Object served for directory requests (default: index.html)",
			},
			&cli.StringFlag{
				Name:  "error-page",
				Usage: "Object served for missing paths (default: 404.html)",
			},
			&cli.StringFlag{
				Name:  "location",
				Usage: "Bucket location used on creation (default: US)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Path pattern to skip during upload (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "public",
				Usage: "Make the bucket content publicly readable after upload",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Re-upload every file even when unchanged",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Maximum parallel uploads",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := siteConfigFromCmd(cmd)
			if err != nil {
				return err
			}

			store, err := newStore(ctx, cfg.Bucket)
			if err != nil {
				return err
			}
			publisher := site.NewPublisher(store,
				site.WithForce(cmd.Bool("force")),
				site.WithConcurrency(int(cmd.Int("concurrency"))))

			if _, err := publisher.Ensure(ctx, cfg); err != nil {
				return fmt.Errorf("site deploy failed: %w", err)
			}
			result, err := publisher.Upload(ctx, cfg)
			if err != nil {
				return fmt.Errorf("site deploy failed: %w", err)
			}
			if cmd.Bool("public") {
				if err := publisher.Publish(ctx, cfg); err != nil {
					return fmt.Errorf("site deploy failed: %w", err)
				}
			}
			return writeOutput(ctx, cmd, result)
		},
	}
}

func sitePublishCmd() *cli.Command {
	return &cli.Command{
		Name:                  "publish",
		EnableShellCompletion: true,
		Usage:                 "Make the bucket content publicly readable",
		Description: `Grant allUsers read access on the bucket objects. The grant is idempotent;
running it on an already public bucket changes nothing.`,
		Flags: siteFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := siteConfigFromCmd(cmd)
			if err != nil {
				return err
			}

			store, err := newStore(ctx, cfg.Bucket)
			if err != nil {
				return err
			}
			if err := site.NewPublisher(store).Publish(ctx, cfg); err != nil {
				return fmt.Errorf("site publish failed: %w", err)
			}
			return nil
		},
	}
}
