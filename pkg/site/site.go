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
	stderrors "errors"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"golang.org/x/sync/errgroup"

	"github.com/stratus-tools/stratus/pkg/defaults"
	"github.com/stratus-tools/stratus/pkg/errors"
)

var crcTable = crc32.MakeTable(crc32.Castagnoli)

// Publisher syncs a local site into a bucket through a Store.
type Publisher struct {
	store       Store
	concurrency int
	force       bool
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithForce re-uploads every file regardless of remote state.
func WithForce(force bool) PublisherOption {
	return func(p *Publisher) {
		p.force = force
	}
}

// WithConcurrency caps the number of parallel uploads.
func WithConcurrency(n int) PublisherOption {
	return func(p *Publisher) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewPublisher creates a Publisher over the given store.
func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		store:       store,
		concurrency: defaults.UploadConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ensure makes sure the bucket exists and carries the website configuration.
// It returns true when the bucket was created by this call.
func (p *Publisher) Ensure(ctx context.Context, cfg *Config) (bool, error) {
	if err := cfg.Validate(); err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid site config", err)
	}

	attrs, err := p.store.BucketAttrs(ctx)
	switch {
	case err == nil:
		if websiteMatches(attrs, cfg) {
			slog.Debug("bucket website config up to date", "bucket", cfg.Bucket)
			return false, nil
		}
		update := storage.BucketAttrsToUpdate{
			Website: &storage.BucketWebsite{
				MainPageSuffix: cfg.IndexPage,
				NotFoundPage:   cfg.ErrorPage,
			},
		}
		if err := p.store.UpdateBucket(ctx, update); err != nil {
			return false, errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("failed to update website config on bucket %q", cfg.Bucket), err)
		}
		slog.Info("bucket website config updated", "bucket", cfg.Bucket)
		return false, nil

	case stderrors.Is(err, storage.ErrBucketNotExist):
		create := &storage.BucketAttrs{
			Name:     cfg.Bucket,
			Location: cfg.Location,
			UniformBucketLevelAccess: storage.UniformBucketLevelAccess{
				Enabled: true,
			},
			Website: &storage.BucketWebsite{
				MainPageSuffix: cfg.IndexPage,
				NotFoundPage:   cfg.ErrorPage,
			},
		}
		if err := p.store.CreateBucket(ctx, cfg.Project, create); err != nil {
			return false, errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("failed to create bucket %q", cfg.Bucket), err)
		}
		slog.Info("bucket created", "bucket", cfg.Bucket, "location", cfg.Location)
		return true, nil

	default:
		return false, errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to read bucket %q", cfg.Bucket), err)
	}
}

// Upload syncs the configured directory into the bucket. Files already
// present with the same size and CRC32C checksum are skipped unless the
// publisher was created with WithForce. Uploads run in parallel with a
// bounded limit; the first failure cancels the rest.
func (p *Publisher) Upload(ctx context.Context, cfg *Config) (*UploadResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid site config", err)
	}
	if cfg.Dir == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "source directory is required")
	}
	if info, err := os.Stat(cfg.Dir); err != nil || !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("source directory %q does not exist", cfg.Dir))
	}

	start := time.Now()
	defer func() {
		uploadDuration.Observe(time.Since(start).Seconds())
	}()

	files, err := collectFiles(cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to walk site directory", err)
	}

	result := &UploadResult{Bucket: cfg.Bucket}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for _, rel := range files {
		g.Go(func() error {
			local := filepath.Join(cfg.Dir, filepath.FromSlash(rel))

			upload, size, err := p.needsUpload(gctx, rel, local)
			if err != nil {
				uploadFilesTotal.WithLabelValues("error").Inc()
				return err
			}
			if !upload {
				slog.Debug("unchanged, skipping", "object", rel)
				uploadFilesTotal.WithLabelValues("skipped").Inc()
				mu.Lock()
				result.Skipped++
				mu.Unlock()
				return nil
			}

			if err := p.uploadFile(gctx, rel, local); err != nil {
				uploadFilesTotal.WithLabelValues("error").Inc()
				return err
			}
			slog.Info("uploaded", "object", rel, "bytes", size)
			uploadFilesTotal.WithLabelValues("uploaded").Inc()
			uploadBytesTotal.Add(float64(size))
			mu.Lock()
			result.Uploaded++
			result.Bytes += size
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("uploading to bucket %q: %w", cfg.Bucket, err)
	}
	return result, nil
}

// Publish makes the bucket content world readable.
func (p *Publisher) Publish(ctx context.Context, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid site config", err)
	}
	if err := p.store.GrantPublicRead(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to grant public read on bucket %q", cfg.Bucket), err)
	}
	slog.Info("bucket content is publicly readable", "bucket", cfg.Bucket)
	return nil
}

// needsUpload compares the local file against the remote object and reports
// whether an upload is required, along with the local file size.
func (p *Publisher) needsUpload(ctx context.Context, object, local string) (bool, int64, error) {
	size, sum, err := fileDigest(local)
	if err != nil {
		return false, 0, err
	}
	if p.force {
		return true, size, nil
	}

	attrs, err := p.store.ObjectAttrs(ctx, object)
	if stderrors.Is(err, storage.ErrObjectNotExist) {
		return true, size, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("reading object %q attributes: %w", object, err)
	}
	return attrs.Size != size || attrs.CRC32C != sum, size, nil
}

func (p *Publisher) uploadFile(ctx context.Context, object, local string) error {
	f, err := os.Open(local)
	if err != nil {
		return fmt.Errorf("opening %q: %w", local, err)
	}
	defer f.Close()

	return p.store.WriteObject(ctx, object, contentType(object), f)
}

// collectFiles walks the site directory and returns slash-separated paths
// relative to it, with exclude patterns applied.
func collectFiles(cfg *Config) ([]string, error) {
	var files []string
	err := filepath.WalkDir(cfg.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(cfg.Dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if excluded(cfg.Exclude, rel) {
			slog.Debug("excluded", "path", rel)
			return nil
		}
		files = append(files, rel)
		return nil
	})
	return files, err
}

func excluded(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
		// Also match against the base name so "*.bak" covers nested files.
		if ok, _ := path.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}
	return false
}

// fileDigest returns the size and CRC32C (Castagnoli) checksum of a file,
// matching the checksum Cloud Storage reports on object attributes.
func fileDigest(name string) (int64, uint32, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, 0, fmt.Errorf("opening %q: %w", name, err)
	}
	defer f.Close()

	h := crc32.New(crcTable)
	size, err := io.Copy(h, f)
	if err != nil {
		return 0, 0, fmt.Errorf("reading %q: %w", name, err)
	}
	return size, h.Sum32(), nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func websiteMatches(attrs *storage.BucketAttrs, cfg *Config) bool {
	return attrs.Website != nil &&
		attrs.Website.MainPageSuffix == cfg.IndexPage &&
		attrs.Website.NotFoundPage == cfg.ErrorPage
}
