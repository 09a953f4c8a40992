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
	"log/slog"
	"time"

	"github.com/stratus-tools/stratus/pkg/errors"
	"github.com/stratus-tools/stratus/pkg/gcloud"
)

// Provisioner creates and removes the load balancer resource chain.
type Provisioner struct {
	client *gcloud.Client
	dryRun bool
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithDryRun makes the provisioner print commands instead of executing them.
func WithDryRun(dryRun bool) Option {
	return func(p *Provisioner) {
		p.dryRun = dryRun
	}
}

// New creates a Provisioner using the given gcloud client.
func New(client *gcloud.Client, opts ...Option) *Provisioner {
	p := &Provisioner{client: client}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Provision walks the resource chain in order. For each resource it first
// describes: an existing resource is reported and skipped, an absent one is
// created. A create failure aborts the run; resources created before the
// failure are left in place (use Teardown to remove them).
func (p *Provisioner) Provision(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid load balancer config", err)
	}
	// The managed certificate needs at least one hostname. Status and
	// Teardown work from resource names alone, so only setup requires this.
	if len(cfg.Domains) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "at least one domain is required")
	}

	result := &Result{
		Project: p.client.Project(),
		Bucket:  cfg.Bucket,
		Domains: cfg.Domains,
	}

	for _, step := range Steps(cfg) {
		if p.dryRun {
			cmd := p.client.CommandLine(step.create...)
			slog.Info("dry-run", "kind", step.Kind, "name", step.Name, "command", cmd)
			result.Steps = append(result.Steps, StepResult{
				Kind:    step.Kind,
				Name:    step.Name,
				Action:  ActionPlanned,
				Command: cmd,
			})
			continue
		}

		action, err := p.ensure(ctx, step)
		stepResult := StepResult{Kind: step.Kind, Name: step.Name, Action: action}
		if err != nil {
			stepResult.Error = err.Error()
			result.Steps = append(result.Steps, stepResult)
			provisionTotal.WithLabelValues("error").Inc()
			return result, fmt.Errorf("provisioning %s %q: %w", step.Kind, step.Name, err)
		}
		result.Steps = append(result.Steps, stepResult)

		switch action {
		case ActionCreated:
			result.Created++
		case ActionExists:
			result.Existed++
		}
	}

	if !p.dryRun {
		provisionTotal.WithLabelValues("success").Inc()
	}
	return result, nil
}

// ensure creates the step's resource unless it already exists.
func (p *Provisioner) ensure(ctx context.Context, step Step) (StepAction, error) {
	start := time.Now()
	defer func() {
		provisionStepDuration.WithLabelValues(step.Kind).Observe(time.Since(start).Seconds())
	}()

	_, err := p.client.Describe(ctx, step.describe...)
	if err == nil {
		slog.Warn("resource already exists, skipping", "kind", step.Kind, "name", step.Name)
		return ActionExists, nil
	}
	if !errors.Is(err, errors.ErrCodeNotFound) {
		return ActionFailed, err
	}

	if err := p.client.Create(ctx, step.create...); err != nil {
		// Lost a race with a concurrent run; the resource is there either way.
		if gcloud.IsAlreadyExists(err) {
			slog.Warn("resource created concurrently", "kind", step.Kind, "name", step.Name)
			return ActionExists, nil
		}
		return ActionFailed, err
	}

	slog.Info("resource created", "kind", step.Kind, "name", step.Name)
	return ActionCreated, nil
}

// TeardownOptions controls Teardown behavior.
type TeardownOptions struct {
	// ContinueOnError keeps deleting remaining resources after a failure.
	ContinueOnError bool
}

// Teardown removes the resource chain in reverse creation order. Absent
// resources are skipped. By default the first failure aborts; with
// ContinueOnError the remaining deletions still run and the first error is
// returned at the end.
func (p *Provisioner) Teardown(ctx context.Context, cfg *Config, opts TeardownOptions) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid load balancer config", err)
	}

	result := &Result{
		Project: p.client.Project(),
		Bucket:  cfg.Bucket,
		Domains: cfg.Domains,
	}

	steps := Steps(cfg)
	var firstErr error

	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]

		if p.dryRun {
			cmd := p.client.CommandLine(step.remove...)
			slog.Info("dry-run", "kind", step.Kind, "name", step.Name, "command", cmd)
			result.Steps = append(result.Steps, StepResult{
				Kind:    step.Kind,
				Name:    step.Name,
				Action:  ActionPlanned,
				Command: cmd,
			})
			continue
		}

		err := p.client.Delete(ctx, step.remove...)
		switch {
		case err == nil:
			slog.Info("resource deleted", "kind", step.Kind, "name", step.Name)
			result.Steps = append(result.Steps, StepResult{Kind: step.Kind, Name: step.Name, Action: ActionDeleted})

		case errors.Is(err, errors.ErrCodeNotFound):
			slog.Debug("resource absent, nothing to delete", "kind", step.Kind, "name", step.Name)
			result.Steps = append(result.Steps, StepResult{Kind: step.Kind, Name: step.Name, Action: ActionAbsent})

		default:
			slog.Error("delete failed", "kind", step.Kind, "name", step.Name, "error", err)
			result.Steps = append(result.Steps, StepResult{
				Kind:   step.Kind,
				Name:   step.Name,
				Action: ActionFailed,
				Error:  err.Error(),
			})
			if !opts.ContinueOnError {
				teardownTotal.WithLabelValues("error").Inc()
				return result, fmt.Errorf("deleting %s %q: %w", step.Kind, step.Name, err)
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("deleting %s %q: %w", step.Kind, step.Name, err)
			}
		}
	}

	if firstErr != nil {
		teardownTotal.WithLabelValues("error").Inc()
		return result, firstErr
	}
	if !p.dryRun {
		teardownTotal.WithLabelValues("success").Inc()
	}
	return result, nil
}
