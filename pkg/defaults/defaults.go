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

package defaults

import "time"

// Timeouts for external command invocations.
const (
	// GcloudCommandTimeout bounds a single gcloud invocation. Managed
	// certificate and global forwarding rule creation are the slowest
	// operations this tool issues.
	GcloudCommandTimeout = 2 * time.Minute
)

// Timeouts for Google Cloud API calls.
const (
	// CloudAPICallTimeout bounds a single storage or resource manager call.
	CloudAPICallTimeout = 30 * time.Second

	// ProjectCreateTimeout bounds the project creation long-running operation.
	ProjectCreateTimeout = 5 * time.Minute

	// ServiceEnableTimeout bounds the batch service enablement operation.
	ServiceEnableTimeout = 5 * time.Minute
)

// Upload settings for static site content.
const (
	// UploadConcurrency is the default number of parallel object uploads.
	UploadConcurrency = 8
)

// Name checking settings.
const (
	// CheckDelay is the default pause between availability probes.
	CheckDelay = 200 * time.Millisecond
)

// HTTP client timeouts for outbound requests (wordlist downloads).
const (
	HTTPClientTimeout         = 60 * time.Second
	HTTPConnectTimeout        = 10 * time.Second
	HTTPKeepAlive             = 30 * time.Second
	HTTPTLSHandshakeTimeout   = 10 * time.Second
	HTTPResponseHeaderTimeout = 30 * time.Second
	HTTPIdleConnTimeout       = 90 * time.Second
)

// HTTP server timeouts for the stratusd daemon.
const (
	ServerReadTimeout     = 10 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)
