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

// Package server implements the stratusd HTTP service. It exposes the
// local name validation rules over a small JSON API so other tooling can
// check candidate project and bucket names without shelling out to the CLI.
//
// # Endpoints
//
//	GET  /healthz      - liveness probe
//	GET  /readyz       - readiness probe
//	GET  /metrics      - Prometheus metrics
//	POST /v1/namecheck - validate candidate names against the naming rules
//
// The namecheck endpoint applies the local rules only; it never calls the
// Google Cloud APIs, so the service needs no credentials.
//
// # Request
//
//	POST /v1/namecheck
//	{"kind": "project", "names": ["my-new-project", "BAD"]}
//
// Kind is "project" or "bucket". The response is the standard namecheck
// report with per-name verdicts (VALID or INVALID with reasons).
//
// # Configuration
//
// Environment variables:
//
//	PORT                      HTTP port (default 8080)
//	LOG_LEVEL                 debug, info, warn, error
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget
package server
