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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "stratusd", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 500, cfg.MaxNamesPerRequest)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}

func TestNewConfigPortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg := NewConfig()
	assert.Equal(t, 9090, cfg.Port)
}

func TestNewConfigIgnoresBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	cfg := NewConfig()
	assert.Equal(t, 8080, cfg.Port)
}

func TestNewConfigShutdownFromEnv(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "45")
	cfg := NewConfig()
	assert.Equal(t, 45*time.Second, cfg.ShutdownTimeout)
}
