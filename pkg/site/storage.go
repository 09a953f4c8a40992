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

package site

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/iam"
	"cloud.google.com/go/storage"
)

const publicReadRole iam.RoleName = "roles/storage.objectViewer"

// Store is the subset of the Cloud Storage API the publisher uses, scoped
// to a single bucket.
type Store interface {
	// BucketAttrs returns the bucket metadata, or storage.ErrBucketNotExist.
	BucketAttrs(ctx context.Context) (*storage.BucketAttrs, error)

	// CreateBucket creates the bucket in the given project.
	CreateBucket(ctx context.Context, project string, attrs *storage.BucketAttrs) error

	// UpdateBucket applies a metadata update to the bucket.
	UpdateBucket(ctx context.Context, u storage.BucketAttrsToUpdate) error

	// ObjectAttrs returns object metadata, or storage.ErrObjectNotExist.
	ObjectAttrs(ctx context.Context, name string) (*storage.ObjectAttrs, error)

	// WriteObject streams src into the named object.
	WriteObject(ctx context.Context, name, contentType string, src io.Reader) error

	// GrantPublicRead adds allUsers as objectViewer on the bucket policy.
	GrantPublicRead(ctx context.Context) error
}

// gcsStore implements Store on a real bucket handle.
type gcsStore struct {
	bucket *storage.BucketHandle
	name   string
}

// NewStore returns a Store bound to the named bucket.
func NewStore(client *storage.Client, bucket string) Store {
	return &gcsStore{
		bucket: client.Bucket(bucket),
		name:   bucket,
	}
}

func (s *gcsStore) BucketAttrs(ctx context.Context) (*storage.BucketAttrs, error) {
	return s.bucket.Attrs(ctx)
}

func (s *gcsStore) CreateBucket(ctx context.Context, project string, attrs *storage.BucketAttrs) error {
	return s.bucket.Create(ctx, project, attrs)
}

func (s *gcsStore) UpdateBucket(ctx context.Context, u storage.BucketAttrsToUpdate) error {
	_, err := s.bucket.Update(ctx, u)
	return err
}

func (s *gcsStore) ObjectAttrs(ctx context.Context, name string) (*storage.ObjectAttrs, error) {
	return s.bucket.Object(name).Attrs(ctx)
}

func (s *gcsStore) WriteObject(ctx context.Context, name, contentType string, src io.Reader) error {
	w := s.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing object %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing object %q: %w", name, err)
	}
	return nil
}

func (s *gcsStore) GrantPublicRead(ctx context.Context) error {
	handle := s.bucket.IAM()
	policy, err := handle.Policy(ctx)
	if err != nil {
		return fmt.Errorf("reading bucket %q IAM policy: %w", s.name, err)
	}
	if policy.HasRole(iam.AllUsers, publicReadRole) {
		return nil
	}
	policy.Add(iam.AllUsers, publicReadRole)
	if err := handle.SetPolicy(ctx, policy); err != nil {
		return fmt.Errorf("updating bucket %q IAM policy: %w", s.name, err)
	}
	return nil
}
