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

// Geometry helpers for ROI shapes: the remote point-string format, splitting polygons with holes
// into simple polygons, and bounds/centroid/containment on top of orb.
package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// PointsToString - space separated "x,y" pairs, in the order given
func PointsToString(points []orb.Point) string {
	var sb strings.Builder
	for c, pt := range points {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(pt.X(), 'f', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(pt.Y(), 'f', -1, 64))
	}
	return sb.String()
}

// ParsePoints - reads what PointsToString writes. Any whitespace separates pairs
func ParsePoints(points string) ([]orb.Point, error) {
	result := []orb.Point{}

	for _, pair := range strings.Fields(points) {
		xy := strings.Split(pair, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("invalid point \"%v\", expected x,y", pair)
		}

		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x in point \"%v\": %v", pair, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y in point \"%v\": %v", pair, err)
		}

		result = append(result, orb.Point{x, y})
	}

	return result, nil
}
