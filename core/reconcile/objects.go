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

package reconcile

import (
	"fmt"

	"github.com/pixlise/roi-exchange/core/hierarchy"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

// ObjectImportOptions - whether to clear each category of existing local objects before adding
// the incoming ones. The two are independent
type ObjectImportOptions struct {
	RemoveAnnotations bool
	RemoveDetections  bool
}

type ObjectResult struct {
	RemovedAnnotations int
	RemovedDetections  int
	Added              int
}

func (r ObjectResult) String() string {
	return fmt.Sprintf("removed %v annotations, %v detections, added %v objects", r.RemovedAnnotations, r.RemovedDetections, r.Added)
}

// MergeObjects - removes the categories asked for, adds every incoming object, then has the
// store resolve parent/child relationships. Removal is not recursive, so clearing annotations
// leaves their child detections in place
func MergeObjects(store hierarchy.Store, incoming []*roiModel.LocalObject, opts ObjectImportOptions) ObjectResult {
	result := ObjectResult{}

	if opts.RemoveAnnotations {
		annotations := store.GetAnnotations()
		store.RemoveObjects(annotations, false)
		result.RemovedAnnotations = len(annotations)
	}

	if opts.RemoveDetections {
		detections := store.GetDetections()
		store.RemoveObjects(detections, false)
		result.RemovedDetections = len(detections)
	}

	store.AddObjects(incoming)
	result.Added = len(incoming)

	store.ResolveHierarchy()
	return result
}
