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
	"strings"
	"testing"

	resourcemanagerpb "cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stratus-tools/stratus/pkg/errors"
)

type fakeCreator struct {
	created []*resourcemanagerpb.Project
	err     error
}

func (f *fakeCreator) CreateProject(_ context.Context, req *resourcemanagerpb.CreateProjectRequest) (*resourcemanagerpb.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, req.Project)
	return req.Project, nil
}

type fakeBilling struct {
	linked map[string]string
	err    error
}

func (f *fakeBilling) LinkBilling(_ context.Context, projectID, account string) error {
	if f.err != nil {
		return f.err
	}
	if f.linked == nil {
		f.linked = make(map[string]string)
	}
	f.linked[projectID] = account
	return nil
}

type fakeServices struct {
	enabled map[string][]string
	err     error
}

func (f *fakeServices) EnableServices(_ context.Context, projectID string, services []string) error {
	if f.err != nil {
		return f.err
	}
	if f.enabled == nil {
		f.enabled = make(map[string][]string)
	}
	f.enabled[projectID] = services
	return nil
}

func TestProvisionMinimal(t *testing.T) {
	creator := &fakeCreator{}
	services := &fakeServices{}
	p := NewProvisioner(creator, nil, services)

	result, err := p.Provision(t.Context(), &Options{ProjectID: "demo-project"})
	require.NoError(t, err)

	assert.Equal(t, "demo-project", result.ProjectID)
	assert.Equal(t, "demo-project", result.DisplayName)
	assert.False(t, result.BillingLinked)
	assert.Equal(t, DefaultServices, result.Services)

	require.Len(t, creator.created, 1)
	assert.Equal(t, "demo-project", creator.created[0].ProjectId)
	assert.Equal(t, DefaultServices, services.enabled["demo-project"])
}

func TestProvisionFull(t *testing.T) {
	creator := &fakeCreator{}
	billing := &fakeBilling{}
	services := &fakeServices{}
	p := NewProvisioner(creator, billing, services)

	opts := &Options{
		ProjectID:      "demo-project",
		DisplayName:    "Demo Project",
		Parent:         "folders/12345",
		BillingAccount: "billingAccounts/000000-AAAAAA-BBBBBB",
		Services:       []string{"run.googleapis.com"},
		ScriptDir:      t.TempDir(),
		OwnerEmail:     "owner@example.com",
	}

	result, err := p.Provision(t.Context(), opts)
	require.NoError(t, err)

	assert.True(t, result.BillingLinked)
	assert.Equal(t, "billingAccounts/000000-AAAAAA-BBBBBB", billing.linked["demo-project"])
	assert.Equal(t, []string{"run.googleapis.com"}, services.enabled["demo-project"])
	assert.Equal(t, "folders/12345", creator.created[0].Parent)
	assert.Len(t, result.Scripts, 2)
}

func TestProvisionRandomSuffix(t *testing.T) {
	creator := &fakeCreator{}
	p := NewProvisioner(creator, nil, nil)

	result, err := p.Provision(t.Context(), &Options{ProjectID: "demo-project", RandomSuffix: true})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.ProjectID, "demo-project-"))
	assert.Len(t, result.ProjectID, len("demo-project")+suffixLen)
	assert.LessOrEqual(t, len(result.ProjectID), 30)
}

func TestProvisionRejectsInvalidID(t *testing.T) {
	p := NewProvisioner(&fakeCreator{}, nil, nil)

	tests := []string{"", "UPPER-case", "short", "trailing-", strings.Repeat("a", 31)}
	for _, id := range tests {
		_, err := p.Provision(t.Context(), &Options{ProjectID: id})
		require.Error(t, err, "id %q", id)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidRequest), "id %q", id)
	}
}

func TestProvisionRejectsSuffixOverflow(t *testing.T) {
	p := NewProvisioner(&fakeCreator{}, nil, nil)

	_, err := p.Provision(t.Context(), &Options{
		ProjectID:    strings.Repeat("a", 28),
		RandomSuffix: true,
	})
	require.Error(t, err)
}

func TestProvisionAlreadyExists(t *testing.T) {
	creator := &fakeCreator{err: status.Error(codes.AlreadyExists, "requested entity already exists")}
	p := NewProvisioner(creator, nil, nil)

	_, err := p.Provision(t.Context(), &Options{ProjectID: "demo-project"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeAlreadyExists))
}

func TestProvisionPermissionDenied(t *testing.T) {
	creator := &fakeCreator{err: status.Error(codes.PermissionDenied, "caller lacks permission")}
	p := NewProvisioner(creator, nil, nil)

	_, err := p.Provision(t.Context(), &Options{ProjectID: "demo-project"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnauthorized))
}

func TestProvisionBillingFailureKeepsProject(t *testing.T) {
	creator := &fakeCreator{}
	billing := &fakeBilling{err: fmt.Errorf("billing API down")}
	p := NewProvisioner(creator, billing, nil)

	result, err := p.Provision(t.Context(), &Options{
		ProjectID:      "demo-project",
		BillingAccount: "billingAccounts/000000-AAAAAA-BBBBBB",
	})
	require.Error(t, err)

	// The project was created before billing failed.
	require.NotNil(t, result)
	assert.Equal(t, "demo-project", result.ProjectID)
	assert.Len(t, creator.created, 1)
	assert.False(t, result.BillingLinked)
}

func TestProvisionBillingWithoutClient(t *testing.T) {
	p := NewProvisioner(&fakeCreator{}, nil, nil)

	_, err := p.Provision(t.Context(), &Options{
		ProjectID:      "demo-project",
		BillingAccount: "billingAccounts/000000-AAAAAA-BBBBBB",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodePrerequisite))
}
