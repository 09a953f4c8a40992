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
	"context"
	stderrors "errors"
	"fmt"

	resourcemanagerpb "cloud.google.com/go/resourcemanager/apiv3/resourcemanagerpb"
	"cloud.google.com/go/storage"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stratus-tools/stratus/pkg/defaults"
)

// projectGetter is the slice of the Resource Manager client the project
// prober needs.
type projectGetter interface {
	GetProject(ctx context.Context, req *resourcemanagerpb.GetProjectRequest, opts ...gax.CallOption) (*resourcemanagerpb.Project, error)
}

// ProjectProber checks project ID availability against the Resource Manager
// API. Both projects visible to the caller and projects owned by others
// count as taken; only a clean not-found means the ID is free.
type ProjectProber struct {
	client projectGetter
}

// NewProjectProber creates a prober over a Resource Manager projects client.
func NewProjectProber(client projectGetter) *ProjectProber {
	return &ProjectProber{client: client}
}

// Probe returns true when no project uses the given ID. A permission error
// means the project exists under someone else's account, so the ID is taken.
func (p *ProjectProber) Probe(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CloudAPICallTimeout)
	defer cancel()

	_, err := p.client.GetProject(ctx, &resourcemanagerpb.GetProjectRequest{
		Name: "projects/" + name,
	})
	if err == nil {
		return false, nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return true, nil
	case codes.PermissionDenied:
		return false, nil
	}
	return false, fmt.Errorf("probing project %q: %w", name, err)
}

// bucketAttrsGetter is the slice of the storage client the bucket prober
// needs.
type bucketAttrsGetter interface {
	BucketAttrs(ctx context.Context, name string) (*storage.BucketAttrs, error)
}

// BucketProber checks bucket name availability against the Cloud Storage
// API. Bucket names are global, so a name visible in any project is taken.
type BucketProber struct {
	client bucketAttrsGetter
}

// NewBucketProber creates a prober over a storage client.
func NewBucketProber(client bucketAttrsGetter) *BucketProber {
	return &BucketProber{client: client}
}

// NewBucketProberFromClient adapts a *storage.Client.
func NewBucketProberFromClient(client *storage.Client) *BucketProber {
	return NewBucketProber(storageAttrs{client: client})
}

// Probe returns true when no bucket uses the given name. A 403 means the
// bucket exists in a project the caller cannot see, so the name is taken.
func (p *BucketProber) Probe(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CloudAPICallTimeout)
	defer cancel()

	_, err := p.client.BucketAttrs(ctx, name)
	if err == nil {
		return false, nil
	}
	if stderrors.Is(err, storage.ErrBucketNotExist) {
		return true, nil
	}
	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) && apiErr.Code == 403 {
		return false, nil
	}
	return false, fmt.Errorf("probing bucket %q: %w", name, err)
}

type storageAttrs struct {
	client *storage.Client
}

func (s storageAttrs) BucketAttrs(ctx context.Context, name string) (*storage.BucketAttrs, error) {
	return s.client.Bucket(name).Attrs(ctx)
}
