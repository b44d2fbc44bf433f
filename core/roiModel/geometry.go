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

package roiModel

import (
	"github.com/paulmach/orb"
)

// Geometry - the local shape types. The set is closed (isGeometry is unexported), anything
// switching over it should handle every type listed in GeometryKind
type Geometry interface {
	isGeometry()
}

// Rectangle - axis aligned, x/y being the top-left corner
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Ellipse - described by the bounding box of the unrotated ellipse plus a rotation
// (radians, about the centre). The remote schema has no rotation, see geometry.EllipseBounds
type Ellipse struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
}

// Line - a single segment, endpoint order is significant
type Line struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// Polyline - open path, vertex order as given
type Polyline struct {
	Points orb.LineString
}

// Polygon - simple polygon without holes
type Polygon struct {
	Points orb.Ring
}

type Point struct {
	X float64
	Y float64
}

// MultiPoint - a set of points that is one object locally but N shapes remotely
type MultiPoint struct {
	Points orb.MultiPoint
}

// CompoundPolygon - one or more polygons each of which may have holes. Never sent as is,
// it's decomposed into simple polygons first
type CompoundPolygon struct {
	Polygons orb.MultiPolygon
}

func (Rectangle) isGeometry()       {}
func (Ellipse) isGeometry()         {}
func (Line) isGeometry()            {}
func (Polyline) isGeometry()        {}
func (Polygon) isGeometry()         {}
func (Point) isGeometry()           {}
func (MultiPoint) isGeometry()      {}
func (CompoundPolygon) isGeometry() {}

type GeometryKind int

const (
	KindUnknown GeometryKind = iota
	KindRectangle
	KindEllipse
	KindLine
	KindPolyline
	KindPolygon
	KindPoint
	KindMultiPoint
	KindCompoundPolygon
)

var kindNames = map[GeometryKind]string{
	KindUnknown:         "unknown",
	KindRectangle:       "rectangle",
	KindEllipse:         "ellipse",
	KindLine:            "line",
	KindPolyline:        "polyline",
	KindPolygon:         "polygon",
	KindPoint:           "point",
	KindMultiPoint:      "multipoint",
	KindCompoundPolygon: "compoundpolygon",
}

func (k GeometryKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// ParseGeometryKind - inverse of GeometryKind.String
func ParseGeometryKind(name string) GeometryKind {
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	return KindUnknown
}

// KindOf - returns the kind of a geometry, KindUnknown for nil
func KindOf(g Geometry) GeometryKind {
	switch g.(type) {
	case Rectangle:
		return KindRectangle
	case Ellipse:
		return KindEllipse
	case Line:
		return KindLine
	case Polyline:
		return KindPolyline
	case Polygon:
		return KindPolygon
	case Point:
		return KindPoint
	case MultiPoint:
		return KindMultiPoint
	case CompoundPolygon:
		return KindCompoundPolygon
	}
	return KindUnknown
}
