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

import (
	"context"
	"fmt"

	"github.com/stratus-tools/stratus/pkg/errors"
)

const certStatusActive = "ACTIVE"

// Status describes every resource in the chain and reports which are present.
// Ready is true only when the full chain exists and the managed certificate
// has finished provisioning. Errors other than not-found abort the check.
func (p *Provisioner) Status(ctx context.Context, cfg *Config) (*StatusReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid load balancer config", err)
	}

	report := &StatusReport{Project: p.client.Project()}
	allPresent := true

	for _, step := range Steps(cfg) {
		status := ResourceStatus{Kind: step.Kind, Name: step.Name}

		detail, err := p.client.Describe(ctx, step.describe...)
		switch {
		case err == nil:
			status.Present = true
			switch step.Kind {
			case KindAddress:
				report.Address = stringField(detail, "address")
			case KindCertificate:
				report.CertificateStatus = certificateStatus(detail)
				status.Detail = report.CertificateStatus
			}

		case errors.Is(err, errors.ErrCodeNotFound):
			allPresent = false

		default:
			return nil, fmt.Errorf("describing %s %q: %w", step.Kind, step.Name, err)
		}

		report.Resources = append(report.Resources, status)
	}

	report.Ready = allPresent && report.CertificateStatus == certStatusActive
	return report, nil
}

// certificateStatus extracts the provisioning state from an ssl-certificate
// describe payload. Managed certificates carry it under managed.status, the
// top level status field is a fallback for self-managed ones.
func certificateStatus(detail map[string]any) string {
	if managed, ok := detail["managed"].(map[string]any); ok {
		if s := stringField(managed, "status"); s != "" {
			return s
		}
	}
	return stringField(detail, "status")
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
