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

package geometry

import (
	"github.com/paulmach/orb"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

// Decompose - splits a compound polygon into simple polygons. For each member polygon we emit
// its exterior ring, then each of its holes, so a polygon with h holes yields h+1 polygons.
// The hole relationship is not kept anywhere, re-importing these gives plain polygons.
func Decompose(compound roiModel.CompoundPolygon) []roiModel.Polygon {
	result := []roiModel.Polygon{}

	for _, poly := range compound.Polygons {
		for _, ring := range poly {
			if len(ring) <= 0 {
				continue
			}
			pts := make(orb.Ring, len(ring))
			copy(pts, ring)
			result = append(result, roiModel.Polygon{Points: pts})
		}
	}

	return result
}

// DecomposeObject - returns the object itself unless it's a compound polygon, in which case each
// decomposed polygon becomes its own object with the parent's plane, name, class and colour
func DecomposeObject(obj *roiModel.LocalObject) []*roiModel.LocalObject {
	compound, ok := obj.Geometry.(roiModel.CompoundPolygon)
	if !ok {
		return []*roiModel.LocalObject{obj}
	}

	result := []*roiModel.LocalObject{}
	for _, poly := range Decompose(compound) {
		part := *obj
		part.Geometry = poly
		result = append(result, &part)
	}
	return result
}
