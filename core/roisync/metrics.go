// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package roisync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/pixlise/roi-exchange/core/shapeCodec"
)

const (
	directionImport = "import"
	directionSend   = "send"
)

var (
	shapesConverted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roi_exchange_shapes_converted_total",
		Help: "Number of shapes/objects converted, by direction",
	}, []string{"direction"})

	shapesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roi_exchange_shapes_skipped_total",
		Help: "Number of shapes/objects skipped because they could not be converted, by direction and reason",
	}, []string{"direction", "reason"})

	shapesApproximated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roi_exchange_shapes_approximated_total",
		Help: "Number of objects sent as an approximation of their local geometry",
	})

	syncOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roi_exchange_sync_operations_total",
		Help: "Number of sync operations run, by operation and result",
	}, []string{"operation", "result"})
)

func countConversion(direction string, report shapeCodec.BatchReport) {
	shapesConverted.WithLabelValues(direction).Add(float64(report.Converted))
	for reason, n := range report.Skipped {
		shapesSkipped.WithLabelValues(direction, reason).Add(float64(n))
	}
	shapesApproximated.Add(float64(len(report.Warnings)))
}

func countOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	syncOperations.WithLabelValues(operation, result).Inc()
}
