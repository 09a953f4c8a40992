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

package project

import (
	"context"
	"fmt"
	"log/slog"

	resourcemanagerpb "cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stratus-tools/stratus/pkg/errors"
)

// Provisioner creates projects and their baseline configuration.
type Provisioner struct {
	projects ProjectCreator
	billing  BillingLinker
	services ServiceEnabler
}

// NewProvisioner creates a Provisioner. The billing and services clients
// may be nil when those steps are not needed.
func NewProvisioner(projects ProjectCreator, billing BillingLinker, services ServiceEnabler) *Provisioner {
	return &Provisioner{
		projects: projects,
		billing:  billing,
		services: services,
	}
}

// Provision creates the project and applies the requested configuration:
// billing link, service enablement, and helper script generation. The
// project is created first; later step failures leave it in place and
// surface the error.
func (p *Provisioner) Provision(ctx context.Context, opts *Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid project options", err)
	}

	projectID := opts.ProjectID
	if opts.RandomSuffix {
		projectID = withRandomSuffix(projectID)
	}

	result := &Result{
		ProjectID:   projectID,
		DisplayName: opts.DisplayName,
	}

	if err := p.create(ctx, projectID, opts); err != nil {
		return nil, err
	}
	slog.Info("project created", "project", projectID)

	if opts.BillingAccount != "" {
		if p.billing == nil {
			return result, errors.New(errors.ErrCodePrerequisite, "no billing client configured")
		}
		if err := p.billing.LinkBilling(ctx, projectID, opts.BillingAccount); err != nil {
			return result, errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("failed to link billing account to project %q", projectID), err)
		}
		result.BillingLinked = true
		slog.Info("billing account linked", "project", projectID, "account", opts.BillingAccount)
	}

	if len(opts.Services) > 0 && p.services != nil {
		if err := p.services.EnableServices(ctx, projectID, opts.Services); err != nil {
			return result, errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("failed to enable services on project %q", projectID), err)
		}
		result.Services = opts.Services
		slog.Info("services enabled", "project", projectID, "count", len(opts.Services))
	}

	if opts.ScriptDir != "" {
		scripts, err := WriteHelperScripts(opts.ScriptDir, &ScriptParams{
			ProjectID:  projectID,
			OwnerEmail: opts.OwnerEmail,
			Services:   opts.Services,
		})
		if err != nil {
			return result, errors.Wrap(errors.ErrCodeInternal, "failed to write helper scripts", err)
		}
		result.Scripts = scripts
	}

	return result, nil
}

func (p *Provisioner) create(ctx context.Context, projectID string, opts *Options) error {
	req := &resourcemanagerpb.CreateProjectRequest{
		Project: &resourcemanagerpb.Project{
			ProjectId:   projectID,
			DisplayName: opts.DisplayName,
			Parent:      opts.Parent,
		},
	}
	if _, err := p.projects.CreateProject(ctx, req); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Wrap(errors.ErrCodeAlreadyExists,
				fmt.Sprintf("project %q already exists", projectID), err)
		}
		if status.Code(err) == codes.PermissionDenied {
			return errors.Wrap(errors.ErrCodeUnauthorized,
				fmt.Sprintf("not allowed to create project %q", projectID), err)
		}
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to create project %q", projectID), err)
	}
	return nil
}

// withRandomSuffix appends a short random hex suffix so repeated attempts
// with a popular base name do not collide.
func withRandomSuffix(id string) string {
	return id + "-" + uuid.NewString()[:suffixLen-1]
}
