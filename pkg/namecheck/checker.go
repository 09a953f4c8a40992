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

package namecheck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/stratus-tools/stratus/pkg/defaults"
)

// Verdict is the outcome for a single candidate name.
type Verdict string

const (
	// VerdictAvailable means the name is valid and no existing resource
	// claims it.
	VerdictAvailable Verdict = "AVAILABLE"
	// VerdictTaken means an existing resource already uses the name.
	VerdictTaken Verdict = "TAKEN"
	// VerdictInvalid means the name violates the naming rules; it was not
	// probed.
	VerdictInvalid Verdict = "INVALID"
	// VerdictValid means the name passes the naming rules; availability was
	// not probed (local-only mode).
	VerdictValid Verdict = "VALID"
	// VerdictError means the availability probe failed.
	VerdictError Verdict = "ERROR"
)

// Prober checks one name against a live API. It returns true when the name
// is still available.
type Prober interface {
	Probe(ctx context.Context, name string) (bool, error)
}

// Result is the verdict for one candidate name.
type Result struct {
	Name    string   `json:"name" yaml:"name"`
	Verdict Verdict  `json:"verdict" yaml:"verdict"`
	Reasons []string `json:"reasons,omitempty" yaml:"reasons,omitempty"`
	Detail  string   `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report aggregates a checking run.
type Report struct {
	Checked   int             `json:"checked" yaml:"checked"`
	Results   []Result        `json:"results" yaml:"results"`
	Summary   map[Verdict]int `json:"summary" yaml:"summary"`
	Available []string        `json:"available,omitempty" yaml:"available,omitempty"`
}

// Rules maps a candidate name to rule violations. ValidateProjectID and
// ValidateBucketName both satisfy it.
type Rules func(name string) []string

// Checker validates candidate names and, when a Prober is configured,
// checks their availability with a paced request rate.
type Checker struct {
	rules     Rules
	prober    Prober
	limiter   *rate.Limiter
	localOnly bool
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithProber enables availability probing using the given prober.
func WithProber(p Prober) CheckerOption {
	return func(c *Checker) {
		c.prober = p
	}
}

// WithDelay sets the minimum delay between availability probes.
func WithDelay(d time.Duration) CheckerOption {
	return func(c *Checker) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithLocalOnly disables probing even when a prober is configured; names
// are checked against the naming rules only.
func WithLocalOnly(localOnly bool) CheckerOption {
	return func(c *Checker) {
		c.localOnly = localOnly
	}
}

// NewChecker creates a Checker applying the given rules.
func NewChecker(rules Rules, opts ...CheckerOption) *Checker {
	c := &Checker{
		rules:   rules,
		limiter: rate.NewLimiter(rate.Every(defaults.CheckDelay), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check runs every candidate through the rules and, for valid names, the
// availability probe. Probe failures mark the single name as ERROR and
// checking continues. An empty candidate list yields an empty report.
func (c *Checker) Check(ctx context.Context, names []string) (*Report, error) {
	report := &Report{
		Summary: make(map[Verdict]int),
	}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		result := c.checkOne(ctx, name)
		if ctx.Err() != nil {
			return report, fmt.Errorf("name checking interrupted: %w", ctx.Err())
		}

		report.Checked++
		report.Results = append(report.Results, result)
		report.Summary[result.Verdict]++
		if result.Verdict == VerdictAvailable {
			report.Available = append(report.Available, result.Name)
		}
	}

	slog.Info("name check complete",
		"checked", report.Checked,
		"available", len(report.Available),
		"invalid", report.Summary[VerdictInvalid])
	return report, nil
}

func (c *Checker) checkOne(ctx context.Context, name string) Result {
	result := Result{Name: name}

	if reasons := c.rules(name); len(reasons) > 0 {
		result.Verdict = VerdictInvalid
		result.Reasons = reasons
		return result
	}

	if c.localOnly || c.prober == nil {
		result.Verdict = VerdictValid
		return result
	}

	if err := c.limiter.Wait(ctx); err != nil {
		result.Verdict = VerdictError
		result.Detail = err.Error()
		return result
	}

	available, err := c.prober.Probe(ctx, name)
	switch {
	case err != nil:
		slog.Warn("availability probe failed", "name", name, "error", err)
		result.Verdict = VerdictError
		result.Detail = err.Error()
	case available:
		result.Verdict = VerdictAvailable
	default:
		result.Verdict = VerdictTaken
	}
	return result
}
