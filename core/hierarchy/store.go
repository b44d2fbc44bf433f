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

// The local object hierarchy: annotations and detections of one image, with parent/child
// relationships derived from spatial containment. Store is what the import code relies on,
// MemoryHierarchy is our implementation of it.
package hierarchy

import (
	"github.com/pixlise/roi-exchange/core/geometry"
	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/utils"
)

// Store - what reconciliation needs from a local hierarchy. ResolveHierarchy must be called after
// every bulk add to re-establish parent/child containment
type Store interface {
	GetAnnotations() []*roiModel.LocalObject
	GetDetections() []*roiModel.LocalObject
	RemoveObjects(objs []*roiModel.LocalObject, recursive bool)
	AddObjects(objs []*roiModel.LocalObject)
	ResolveHierarchy()
}

// MemoryHierarchy - keeps objects in insertion order. Not safe for concurrent writers, callers
// sharing one across goroutines have to serialise access
type MemoryHierarchy struct {
	objects []*roiModel.LocalObject
	idGen   utils.IDGenerator
}

func NewMemoryHierarchy(idGen utils.IDGenerator) *MemoryHierarchy {
	return &MemoryHierarchy{objects: []*roiModel.LocalObject{}, idGen: idGen}
}

func (h *MemoryHierarchy) GetObjects() []*roiModel.LocalObject {
	return append([]*roiModel.LocalObject{}, h.objects...)
}

func (h *MemoryHierarchy) GetAnnotations() []*roiModel.LocalObject {
	return h.getByType(roiModel.Annotation)
}

func (h *MemoryHierarchy) GetDetections() []*roiModel.LocalObject {
	return h.getByType(roiModel.Detection)
}

func (h *MemoryHierarchy) getByType(objType roiModel.ObjectType) []*roiModel.LocalObject {
	result := []*roiModel.LocalObject{}
	for _, obj := range h.objects {
		if obj.Type == objType {
			result = append(result, obj)
		}
	}
	return result
}

// GetChildren - direct children of the given object ID, empty ID returns the top level objects
func (h *MemoryHierarchy) GetChildren(parentID string) []*roiModel.LocalObject {
	result := []*roiModel.LocalObject{}
	for _, obj := range h.objects {
		if obj.ParentID == parentID {
			result = append(result, obj)
		}
	}
	return result
}

// AddObjects - objects without an ID get one generated
func (h *MemoryHierarchy) AddObjects(objs []*roiModel.LocalObject) {
	for _, obj := range objs {
		if len(obj.ID) <= 0 {
			obj.ID = h.idGen.GenObjectID()
		}
		h.objects = append(h.objects, obj)
	}
}

// RemoveObjects - if recursive, descendants of the removed objects go too. Otherwise they're
// moved up to the removed object's parent
func (h *MemoryHierarchy) RemoveObjects(objs []*roiModel.LocalObject, recursive bool) {
	toRemove := map[string]bool{}
	for _, obj := range objs {
		toRemove[obj.ID] = true
	}

	byID := map[string]*roiModel.LocalObject{}
	for _, obj := range h.objects {
		byID[obj.ID] = obj
	}

	if recursive {
		// Keep sweeping until no more descendants get added
		for added := true; added; {
			added = false
			for _, obj := range h.objects {
				if !toRemove[obj.ID] && toRemove[obj.ParentID] {
					toRemove[obj.ID] = true
					added = true
				}
			}
		}
	}

	kept := []*roiModel.LocalObject{}
	for _, obj := range h.objects {
		if toRemove[obj.ID] {
			continue
		}

		// Walk up past any removed ancestors
		for len(obj.ParentID) > 0 && toRemove[obj.ParentID] {
			parent, ok := byID[obj.ParentID]
			if !ok {
				obj.ParentID = ""
				break
			}
			obj.ParentID = parent.ParentID
		}
		kept = append(kept, obj)
	}

	h.objects = kept
}

// ResolveHierarchy - sets each object's parent to the smallest annotation on the same z/t plane
// that contains its centroid and is larger than it. Detections are never parents
func (h *MemoryHierarchy) ResolveHierarchy() {
	areas := map[string]float64{}
	for _, obj := range h.objects {
		areas[obj.ID] = geometry.Area(obj.Geometry)
	}

	for _, obj := range h.objects {
		centre := geometry.Centroid(obj.Geometry)
		parentID := ""
		parentArea := 0.0

		for _, candidate := range h.objects {
			if candidate == obj || candidate.Type != roiModel.Annotation {
				continue
			}
			if candidate.Plane.Z != obj.Plane.Z || candidate.Plane.T != obj.Plane.T {
				continue
			}

			candidateArea := areas[candidate.ID]
			if candidateArea <= areas[obj.ID] {
				continue
			}
			if len(parentID) > 0 && candidateArea >= parentArea {
				continue
			}
			if !geometry.Contains(candidate.Geometry, centre) {
				continue
			}

			parentID = candidate.ID
			parentArea = candidateArea
		}

		obj.ParentID = parentID
	}
}
