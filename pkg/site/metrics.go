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

package site

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stratus_site_upload_files_total",
		Help: "Total files processed by site upload, partitioned by outcome.",
	}, []string{"status"})

	uploadBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stratus_site_upload_bytes_total",
		Help: "Total bytes uploaded to the site bucket.",
	})

	uploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "stratus_site_upload_duration_seconds",
		Help:    "Duration of site upload runs in seconds.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
	})
)
