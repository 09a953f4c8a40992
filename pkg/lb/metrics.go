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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Provisioning metrics
	provisionStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stratus_lb_step_duration_seconds",
			Help:    "Time taken by individual load balancer provisioning steps",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
		[]string{"kind"}, // address, ssl-certificate, backend-bucket, url-map, target-https-proxy, forwarding-rule
	)

	provisionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stratus_lb_provision_total",
			Help: "Total number of load balancer provisioning attempts",
		},
		[]string{"status"}, // success or error
	)

	teardownTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stratus_lb_teardown_total",
			Help: "Total number of load balancer teardown attempts",
		},
		[]string{"status"}, // success or error
	)
)
