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

package shapeCodec

import (
	"fmt"
	"strings"

	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/utils"
)

// BatchReport - counts of what happened converting a list of items, so callers can tell the user
// how many got converted, how many were skipped and why
type BatchReport struct {
	Converted int
	Skipped   map[string]int
	Failures  []ItemError
	Warnings  []GeometryAssumptionWarning
}

func newBatchReport() BatchReport {
	return BatchReport{Skipped: map[string]int{}}
}

func (r *BatchReport) skip(index int, item string, err error) {
	r.Skipped[SkipReason(err)]++
	r.Failures = append(r.Failures, ItemError{Index: index, Item: item, Err: err})
}

// SkippedCount - total across all reasons
func (r BatchReport) SkippedCount() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

func (r BatchReport) Summary() string {
	summary := fmt.Sprintf("converted %v, skipped %v", r.Converted, r.SkippedCount())
	if len(r.Skipped) > 0 {
		reasons := []string{}
		for _, reason := range utils.GetSortedMapKeys(r.Skipped) {
			reasons = append(reasons, fmt.Sprintf("%v: %v", reason, r.Skipped[reason]))
		}
		summary += " (" + strings.Join(reasons, ", ") + ")"
	}
	if len(r.Warnings) > 0 {
		summary += fmt.Sprintf(", %v approximated", len(r.Warnings))
	}
	return summary
}

// EncodeAll - encodes each object, skipping the ones that fail. If allOrNothing is set, the first
// failure aborts and no shapes are returned
func (e *Encoder) EncodeAll(objs []*roiModel.LocalObject, allOrNothing bool) ([]roiModel.RemoteShape, BatchReport, error) {
	report := newBatchReport()
	shapes := []roiModel.RemoteShape{}

	for c, obj := range objs {
		encoded, err := e.Encode(obj)
		if err != nil {
			itemErr := ItemError{Index: c, Item: obj.String(), Err: err}
			if allOrNothing {
				return nil, report, itemErr
			}
			e.log.Errorf("Skipping %v", itemErr)
			report.skip(c, obj.String(), err)
			continue
		}

		shapes = append(shapes, encoded.Shapes...)
		report.Warnings = append(report.Warnings, encoded.Warnings...)
		report.Converted++
	}

	return shapes, report, nil
}

// DecodeAll - decodes each shape, skipping the ones that fail. If allOrNothing is set, the first
// failure aborts and no objects are returned
func (d *Decoder) DecodeAll(shapes []roiModel.RemoteShape, allOrNothing bool) ([]*roiModel.LocalObject, BatchReport, error) {
	report := newBatchReport()
	objs := []*roiModel.LocalObject{}

	for c, shape := range shapes {
		obj, err := d.Decode(shape)
		if err != nil {
			item := fmt.Sprintf("%v shape \"%v\"", primitiveName(shape.Type), shape.Text)
			if allOrNothing {
				return nil, report, ItemError{Index: c, Item: item, Err: err}
			}
			d.log.Errorf("Skipping %v", ItemError{Index: c, Item: item, Err: err})
			report.skip(c, item, err)
			continue
		}

		objs = append(objs, obj)
		report.Converted++
	}

	return objs, report, nil
}
