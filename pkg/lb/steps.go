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

package lb

import "strings"

// Step is one resource in the provisioning sequence: how to check for it,
// how to create it, and how to remove it. Steps are executed strictly in
// slice order; Teardown walks them in reverse.
type Step struct {
	Kind     string
	Name     string
	describe []string
	create   []string
	remove   []string
}

// Steps expands a validated Config into the ordered provisioning sequence.
// Each later step references earlier ones by name, so the order is load
// bearing: the forwarding rule needs the proxy, the proxy needs the URL map
// and certificate, the URL map needs the backend bucket.
func Steps(cfg *Config) []Step {
	steps := []Step{
		{
			Kind:     KindAddress,
			Name:     cfg.AddressName(),
			describe: []string{"compute", "addresses", "describe", cfg.AddressName(), "--global"},
			create: []string{
				"compute", "addresses", "create", cfg.AddressName(),
				"--global", "--ip-version=IPV4", "--network-tier=PREMIUM",
			},
			remove: []string{"compute", "addresses", "delete", cfg.AddressName(), "--global"},
		},
		{
			Kind:     KindCertificate,
			Name:     cfg.CertificateName(),
			describe: []string{"compute", "ssl-certificates", "describe", cfg.CertificateName(), "--global"},
			create: []string{
				"compute", "ssl-certificates", "create", cfg.CertificateName(),
				"--domains=" + strings.Join(cfg.Domains, ","), "--global",
			},
			remove: []string{"compute", "ssl-certificates", "delete", cfg.CertificateName(), "--global"},
		},
		{
			Kind:     KindBackendBucket,
			Name:     cfg.BackendBucketName(),
			describe: []string{"compute", "backend-buckets", "describe", cfg.BackendBucketName()},
			create:   backendBucketCreateArgs(cfg),
			remove:   []string{"compute", "backend-buckets", "delete", cfg.BackendBucketName()},
		},
		{
			Kind:     KindURLMap,
			Name:     cfg.URLMapName(),
			describe: []string{"compute", "url-maps", "describe", cfg.URLMapName()},
			create: []string{
				"compute", "url-maps", "create", cfg.URLMapName(),
				"--default-backend-bucket=" + cfg.BackendBucketName(),
			},
			remove: []string{"compute", "url-maps", "delete", cfg.URLMapName()},
		},
		{
			Kind:     KindHTTPSProxy,
			Name:     cfg.HTTPSProxyName(),
			describe: []string{"compute", "target-https-proxies", "describe", cfg.HTTPSProxyName()},
			create: []string{
				"compute", "target-https-proxies", "create", cfg.HTTPSProxyName(),
				"--url-map=" + cfg.URLMapName(),
				"--ssl-certificates=" + cfg.CertificateName(),
			},
			remove: []string{"compute", "target-https-proxies", "delete", cfg.HTTPSProxyName()},
		},
		{
			Kind:     KindForwardingRule,
			Name:     cfg.RuleName(),
			describe: []string{"compute", "forwarding-rules", "describe", cfg.RuleName(), "--global"},
			create: []string{
				"compute", "forwarding-rules", "create", cfg.RuleName(),
				"--global",
				"--address=" + cfg.AddressName(),
				"--target-https-proxy=" + cfg.HTTPSProxyName(),
				"--ports=443",
			},
			remove: []string{"compute", "forwarding-rules", "delete", cfg.RuleName(), "--global"},
		},
	}

	if cfg.EnableHTTP {
		steps = append(steps,
			Step{
				Kind:     KindHTTPProxy,
				Name:     cfg.HTTPProxyName(),
				describe: []string{"compute", "target-http-proxies", "describe", cfg.HTTPProxyName()},
				create: []string{
					"compute", "target-http-proxies", "create", cfg.HTTPProxyName(),
					"--url-map=" + cfg.URLMapName(),
				},
				remove: []string{"compute", "target-http-proxies", "delete", cfg.HTTPProxyName()},
			},
			Step{
				Kind:     KindForwardingRule,
				Name:     cfg.HTTPRuleName(),
				describe: []string{"compute", "forwarding-rules", "describe", cfg.HTTPRuleName(), "--global"},
				create: []string{
					"compute", "forwarding-rules", "create", cfg.HTTPRuleName(),
					"--global",
					"--address=" + cfg.AddressName(),
					"--target-http-proxy=" + cfg.HTTPProxyName(),
					"--ports=80",
				},
				remove: []string{"compute", "forwarding-rules", "delete", cfg.HTTPRuleName(), "--global"},
			},
		)
	}

	return steps
}

func backendBucketCreateArgs(cfg *Config) []string {
	args := []string{
		"compute", "backend-buckets", "create", cfg.BackendBucketName(),
		"--gcs-bucket-name=" + cfg.Bucket,
	}
	if cfg.EnableCDN {
		args = append(args, "--enable-cdn")
	}
	return args
}
