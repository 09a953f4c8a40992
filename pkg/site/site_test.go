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
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObject struct {
	data        []byte
	contentType string
}

// fakeStore keeps bucket and object state in memory.
type fakeStore struct {
	mu      sync.Mutex
	bucket  *storage.BucketAttrs
	updates []storage.BucketAttrsToUpdate
	objects map[string]fakeObject
	public  bool
	writes  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string]fakeObject)}
}

func (f *fakeStore) BucketAttrs(context.Context) (*storage.BucketAttrs, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bucket == nil {
		return nil, storage.ErrBucketNotExist
	}
	return f.bucket, nil
}

func (f *fakeStore) CreateBucket(_ context.Context, _ string, attrs *storage.BucketAttrs) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bucket = attrs
	return nil
}

func (f *fakeStore) UpdateBucket(_ context.Context, u storage.BucketAttrsToUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, u)
	if u.Website != nil {
		f.bucket.Website = u.Website
	}
	return nil
}

func (f *fakeStore) ObjectAttrs(_ context.Context, name string) (*storage.ObjectAttrs, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[name]
	if !ok {
		return nil, storage.ErrObjectNotExist
	}
	return &storage.ObjectAttrs{
		Name:   name,
		Size:   int64(len(obj.data)),
		CRC32C: crc32.Checksum(obj.data, crcTable),
	}, nil
}

func (f *fakeStore) WriteObject(_ context.Context, name, contentType string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = fakeObject{data: data, contentType: contentType}
	f.writes++
	return nil
}

func (f *fakeStore) GrantPublicRead(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.public = true
	return nil
}

func writeSiteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func siteConfig(dir string) *Config {
	return &Config{
		Bucket:  "www.example.com",
		Project: "demo-project",
		Dir:     dir,
	}
}

func TestEnsureCreatesBucket(t *testing.T) {
	store := newFakeStore()
	p := NewPublisher(store)

	created, err := p.Ensure(t.Context(), siteConfig(""))
	require.NoError(t, err)
	assert.True(t, created)

	require.NotNil(t, store.bucket)
	assert.Equal(t, "www.example.com", store.bucket.Name)
	assert.Equal(t, "US", store.bucket.Location)
	assert.True(t, store.bucket.UniformBucketLevelAccess.Enabled)
	require.NotNil(t, store.bucket.Website)
	assert.Equal(t, "index.html", store.bucket.Website.MainPageSuffix)
	assert.Equal(t, "404.html", store.bucket.Website.NotFoundPage)
}

func TestEnsureUpdatesWebsiteConfig(t *testing.T) {
	store := newFakeStore()
	store.bucket = &storage.BucketAttrs{Name: "www.example.com"}
	p := NewPublisher(store)

	created, err := p.Ensure(t.Context(), siteConfig(""))
	require.NoError(t, err)
	assert.False(t, created)
	require.Len(t, store.updates, 1)
	assert.Equal(t, "index.html", store.bucket.Website.MainPageSuffix)
}

func TestEnsureNoopWhenCurrent(t *testing.T) {
	store := newFakeStore()
	store.bucket = &storage.BucketAttrs{
		Name: "www.example.com",
		Website: &storage.BucketWebsite{
			MainPageSuffix: "index.html",
			NotFoundPage:   "404.html",
		},
	}
	p := NewPublisher(store)

	created, err := p.Ensure(t.Context(), siteConfig(""))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, store.updates)
}

func TestUploadFreshDirectory(t *testing.T) {
	dir := writeSiteFiles(t, map[string]string{
		"index.html":    "<html>home</html>",
		"404.html":      "<html>missing</html>",
		"css/style.css": "body {}",
	})
	store := newFakeStore()
	p := NewPublisher(store)

	result, err := p.Upload(t.Context(), siteConfig(dir))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Uploaded)
	assert.Equal(t, 0, result.Skipped)
	assert.Positive(t, result.Bytes)

	require.Contains(t, store.objects, "css/style.css")
	assert.Contains(t, store.objects["index.html"].contentType, "text/html")
	assert.Contains(t, store.objects["css/style.css"].contentType, "text/css")
}

func TestUploadSkipsUnchanged(t *testing.T) {
	dir := writeSiteFiles(t, map[string]string{
		"index.html": "<html>home</html>",
		"about.html": "<html>about</html>",
	})
	store := newFakeStore()
	p := NewPublisher(store)

	_, err := p.Upload(t.Context(), siteConfig(dir))
	require.NoError(t, err)
	require.Equal(t, 2, store.writes)

	// Change one file; only that one is re-uploaded.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.html"), []byte("<html>new</html>"), 0o644))

	result, err := p.Upload(t.Context(), siteConfig(dir))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 3, store.writes)
}

func TestUploadForce(t *testing.T) {
	dir := writeSiteFiles(t, map[string]string{"index.html": "<html>home</html>"})
	store := newFakeStore()

	_, err := NewPublisher(store).Upload(t.Context(), siteConfig(dir))
	require.NoError(t, err)

	result, err := NewPublisher(store, WithForce(true)).Upload(t.Context(), siteConfig(dir))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)
	assert.Equal(t, 0, result.Skipped)
}

func TestUploadExcludePatterns(t *testing.T) {
	dir := writeSiteFiles(t, map[string]string{
		"index.html":      "<html>home</html>",
		"notes.bak":       "scratch",
		"drafts/todo.txt": "draft",
	})
	store := newFakeStore()
	p := NewPublisher(store)

	cfg := siteConfig(dir)
	cfg.Exclude = []string{"*.bak", "drafts/*"}

	result, err := p.Upload(t.Context(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)
	assert.NotContains(t, store.objects, "notes.bak")
	assert.NotContains(t, store.objects, "drafts/todo.txt")
}

func TestUploadMissingDirectory(t *testing.T) {
	p := NewPublisher(newFakeStore())

	cfg := siteConfig(filepath.Join(t.TempDir(), "nope"))
	_, err := p.Upload(t.Context(), cfg)
	assert.Error(t, err)
}

func TestUploadEmptyDirectory(t *testing.T) {
	p := NewPublisher(newFakeStore())

	result, err := p.Upload(t.Context(), siteConfig(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Uploaded)
	assert.Equal(t, 0, result.Skipped)
}

func TestPublish(t *testing.T) {
	store := newFakeStore()
	p := NewPublisher(store)

	require.NoError(t, p.Publish(t.Context(), siteConfig("")))
	assert.True(t, store.public)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := `bucket: www.example.com
project: demo-project
dir: ./public
exclude:
  - "*.bak"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", cfg.Bucket)
	assert.Equal(t, "demo-project", cfg.Project)
	assert.Equal(t, "./public", cfg.Dir)
	assert.Equal(t, []string{"*.bak"}, cfg.Exclude)
}

func TestContentType(t *testing.T) {
	assert.Contains(t, contentType("index.html"), "text/html")
	assert.Contains(t, contentType("app.js"), "javascript")
	assert.Equal(t, "application/octet-stream", contentType("LICENSE"))
}
