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

package server

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/stratus-tools/stratus/pkg/defaults"
)

// Config holds server configuration.
type Config struct {
	// Server identity
	Name    string
	Version string

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// MaxNamesPerRequest caps the candidate list on a single namecheck call.
	MaxNamesPerRequest int

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewConfig returns a Config with defaults, overridden from the environment
// where set.
func NewConfig() *Config {
	cfg := &Config{
		Name:               "stratusd",
		Version:            "undefined",
		Address:            "",
		Port:               8080,
		RateLimit:          100,
		RateLimitBurst:     200,
		MaxNamesPerRequest: 500,
		ReadTimeout:        defaults.ServerReadTimeout,
		WriteTimeout:       defaults.ServerWriteTimeout,
		IdleTimeout:        defaults.ServerIdleTimeout,
		ShutdownTimeout:    defaults.ServerShutdownTimeout,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	// Allow customization of shutdown timeout to match the orchestrator's
	// eviction grace period.
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}
