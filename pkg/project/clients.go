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

	billing "cloud.google.com/go/billing/apiv1"
	billingpb "cloud.google.com/go/billing/apiv1/billingpb"
	resourcemanager "cloud.google.com/go/resourcemanager/apiv3"
	resourcemanagerpb "cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	serviceusage "cloud.google.com/go/serviceusage/apiv1"
	serviceusagepb "cloud.google.com/go/serviceusage/apiv1/serviceusagepb"

	"github.com/stratus-tools/stratus/pkg/defaults"
)

// ProjectCreator creates a project and blocks until the operation finishes.
type ProjectCreator interface {
	CreateProject(ctx context.Context, req *resourcemanagerpb.CreateProjectRequest) (*resourcemanagerpb.Project, error)
}

// BillingLinker attaches a billing account to a project.
type BillingLinker interface {
	LinkBilling(ctx context.Context, projectID, billingAccount string) error
}

// ServiceEnabler enables APIs on a project and blocks until done.
type ServiceEnabler interface {
	EnableServices(ctx context.Context, projectID string, services []string) error
}

// Clients bundles the real GCP clients behind the provisioner interfaces.
type Clients struct {
	Projects *resourcemanager.ProjectsClient
	Billing  *billing.CloudBillingClient
	Services *serviceusage.Client
}

func (c *Clients) CreateProject(ctx context.Context, req *resourcemanagerpb.CreateProjectRequest) (*resourcemanagerpb.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.ProjectCreateTimeout)
	defer cancel()

	op, err := c.Projects.CreateProject(ctx, req)
	if err != nil {
		return nil, err
	}
	proj, err := op.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("waiting for project creation: %w", err)
	}
	return proj, nil
}

func (c *Clients) LinkBilling(ctx context.Context, projectID, billingAccount string) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.CloudAPICallTimeout)
	defer cancel()

	_, err := c.Billing.UpdateProjectBillingInfo(ctx, &billingpb.UpdateProjectBillingInfoRequest{
		Name: "projects/" + projectID,
		ProjectBillingInfo: &billingpb.ProjectBillingInfo{
			BillingAccountName: billingAccount,
		},
	})
	return err
}

func (c *Clients) EnableServices(ctx context.Context, projectID string, services []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.ServiceEnableTimeout)
	defer cancel()

	op, err := c.Services.BatchEnableServices(ctx, &serviceusagepb.BatchEnableServicesRequest{
		Parent:     "projects/" + projectID,
		ServiceIds: services,
	})
	if err != nil {
		return err
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for service enablement: %w", err)
	}
	return nil
}
