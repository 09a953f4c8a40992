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

// Package defaults provides centralized configuration constants for stratus.
//
// This package defines timeout values, concurrency limits, and other
// configuration defaults used across the codebase. Centralizing these values
// ensures consistency and makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/stratus-tools/stratus/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.GcloudCommandTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - gcloud invocations: 2m default; certificate and forwarding rule
//     creation are slow control-plane operations
//   - Cloud API calls (storage, resource manager): 30s per call
//   - Project creation: 5m for the long-running operation
//   - HTTP server shutdown: 30s for graceful shutdown
package defaults
