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

// Package lb provisions the Google Cloud HTTPS load balancer chain that
// fronts a static website bucket: global address, managed SSL certificate,
// backend bucket, URL map, target HTTPS proxy, and forwarding rule, with an
// optional plain HTTP listener on port 80.
//
// Provisioning is idempotent: each resource is described first and only
// created when absent. A failure mid-chain leaves earlier resources in
// place; Teardown removes the chain in reverse order and treats absent
// resources as already done.
package lb
