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

// SchemaNamespace - namespace of the remote shape schema, prefixed to primitive names to form type URIs
const SchemaNamespace = "http://www.openmicroscopy.org/Schemas/OME/2016-06"

// Primitive shape names of the remote schema
const (
	ShapeRectangle = "Rectangle"
	ShapeEllipse   = "Ellipse"
	ShapeLine      = "Line"
	ShapePolyline  = "Polyline"
	ShapePolygon   = "Polygon"
	ShapePoint     = "Point"
	ShapeLabel     = "Label"
	ShapeMask      = "Mask"
)

// RemoteShape - a shape as the remote server stores it. Which geometry fields are relevant depends
// on Type:
//   - Rectangle: X, Y (top-left), Width, Height
//   - Ellipse: X, Y (centre), RadiusX, RadiusY
//   - Line: X1, Y1, X2, Y2
//   - Polyline, Polygon: Points ("x,y x,y ...")
//   - Point, Label: X, Y
//
// Colours are packed RGBA.
type RemoteShape struct {
	Type         string          `json:"type" bson:"type"`
	Plane        PlaneCoordinate `json:"plane" bson:"plane"`
	Text         string          `json:"text,omitempty" bson:"text,omitempty"`
	Locked       *bool           `json:"locked,omitempty" bson:"locked,omitempty"`
	FillColour   int32           `json:"fillColour" bson:"fillColour"`
	StrokeColour int32           `json:"strokeColour" bson:"strokeColour"`

	X       float64 `json:"x,omitempty" bson:"x,omitempty"`
	Y       float64 `json:"y,omitempty" bson:"y,omitempty"`
	Width   float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height  float64 `json:"height,omitempty" bson:"height,omitempty"`
	RadiusX float64 `json:"radiusX,omitempty" bson:"radiusX,omitempty"`
	RadiusY float64 `json:"radiusY,omitempty" bson:"radiusY,omitempty"`
	X1      float64 `json:"x1,omitempty" bson:"x1,omitempty"`
	Y1      float64 `json:"y1,omitempty" bson:"y1,omitempty"`
	X2      float64 `json:"x2,omitempty" bson:"x2,omitempty"`
	Y2      float64 `json:"y2,omitempty" bson:"y2,omitempty"`
	Points  string  `json:"points,omitempty" bson:"points,omitempty"`
}

// TypeURI - the fully qualified type tag, eg http://www.openmicroscopy.org/Schemas/OME/2016-06#Rectangle
func (s RemoteShape) TypeURI() string {
	return SchemaNamespace + "#" + s.Type
}

// IsLocked - unset counts as unlocked
func (s RemoteShape) IsLocked() bool {
	return s.Locked != nil && *s.Locked
}
