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
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

const angleTolerance = 1e-9

// IsAxisAligned - true if the ellipse can be described by its bounding box alone. Circles and
// rotations by multiples of 90 degrees qualify
func IsAxisAligned(e roiModel.Ellipse) bool {
	if e.Width == e.Height {
		return true
	}
	return math.Abs(math.Sin(2*e.Rotation)) < angleTolerance
}

// EllipseBounds - axis aligned bounds of the ellipse, taking rotation into account
func EllipseBounds(e roiModel.Ellipse) orb.Bound {
	cx := e.X + e.Width/2
	cy := e.Y + e.Height/2
	a := e.Width / 2
	b := e.Height / 2

	sin, cos := math.Sincos(e.Rotation)
	hx := math.Sqrt(a*a*cos*cos + b*b*sin*sin)
	hy := math.Sqrt(a*a*sin*sin + b*b*cos*cos)

	if e.Rotation == 0 {
		hx, hy = a, b
	}

	return orb.Bound{Min: orb.Point{cx - hx, cy - hy}, Max: orb.Point{cx + hx, cy + hy}}
}

// Bound - axis aligned bounds of any geometry kind
func Bound(g roiModel.Geometry) orb.Bound {
	switch s := g.(type) {
	case roiModel.Rectangle:
		return orb.Bound{Min: orb.Point{s.X, s.Y}, Max: orb.Point{s.X + s.Width, s.Y + s.Height}}
	case roiModel.Ellipse:
		return EllipseBounds(s)
	case roiModel.Line:
		return orb.LineString{{s.X1, s.Y1}, {s.X2, s.Y2}}.Bound()
	case roiModel.Polyline:
		return s.Points.Bound()
	case roiModel.Polygon:
		return s.Points.Bound()
	case roiModel.Point:
		return orb.Point{s.X, s.Y}.Bound()
	case roiModel.MultiPoint:
		return s.Points.Bound()
	case roiModel.CompoundPolygon:
		return s.Polygons.Bound()
	}
	return orb.Bound{}
}

// Centroid - area weighted centroid for areas, length weighted for lines, mean for points
func Centroid(g roiModel.Geometry) orb.Point {
	switch s := g.(type) {
	case roiModel.Rectangle, roiModel.Ellipse:
		return Bound(s).Center()
	case roiModel.Line:
		return orb.Point{(s.X1 + s.X2) / 2, (s.Y1 + s.Y2) / 2}
	case roiModel.Polyline:
		c, _ := planar.CentroidArea(s.Points)
		return c
	case roiModel.Polygon:
		c, _ := planar.CentroidArea(closeRing(s.Points))
		return c
	case roiModel.Point:
		return orb.Point{s.X, s.Y}
	case roiModel.MultiPoint:
		c, _ := planar.CentroidArea(s.Points)
		return c
	case roiModel.CompoundPolygon:
		c, _ := planar.CentroidArea(closePolygons(s.Polygons))
		return c
	}
	return orb.Point{}
}

// Area - 0 for anything that doesn't enclose an area
func Area(g roiModel.Geometry) float64 {
	switch s := g.(type) {
	case roiModel.Rectangle:
		return math.Abs(s.Width * s.Height)
	case roiModel.Ellipse:
		return math.Abs(math.Pi * s.Width / 2 * s.Height / 2)
	case roiModel.Polygon:
		return math.Abs(planar.Area(closeRing(s.Points)))
	case roiModel.CompoundPolygon:
		return math.Abs(planar.Area(closePolygons(s.Polygons)))
	}
	return 0
}

// Contains - whether pt is inside (or on the edge of) an area geometry. Always false for
// lines and points
func Contains(g roiModel.Geometry, pt orb.Point) bool {
	switch s := g.(type) {
	case roiModel.Rectangle:
		return Bound(s).Contains(pt)
	case roiModel.Ellipse:
		a := s.Width / 2
		b := s.Height / 2
		if a <= 0 || b <= 0 {
			return false
		}
		centre := Centroid(s)
		sin, cos := math.Sincos(-s.Rotation)
		dx := pt.X() - centre.X()
		dy := pt.Y() - centre.Y()
		x := dx*cos - dy*sin
		y := dx*sin + dy*cos
		return (x*x)/(a*a)+(y*y)/(b*b) <= 1
	case roiModel.Polygon:
		if len(s.Points) < 3 {
			return false
		}
		return planar.RingContains(s.Points, pt)
	case roiModel.CompoundPolygon:
		return planar.MultiPolygonContains(closePolygons(s.Polygons), pt)
	}
	return false
}

func closeRing(r orb.Ring) orb.Ring {
	if len(r) <= 0 || r.Closed() {
		return r
	}
	closed := make(orb.Ring, len(r), len(r)+1)
	copy(closed, r)
	return append(closed, r[0])
}

func closePolygons(mp orb.MultiPolygon) orb.MultiPolygon {
	result := make(orb.MultiPolygon, 0, len(mp))
	for _, poly := range mp {
		closed := make(orb.Polygon, 0, len(poly))
		for _, ring := range poly {
			closed = append(closed, closeRing(ring))
		}
		result = append(result, closed)
	}
	return result
}
