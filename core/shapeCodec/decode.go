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

	"github.com/paulmach/orb"
	"github.com/pixlise/roi-exchange/core/geometry"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/packedColour"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

// Fewer points than this can't describe the shape, so it's rejected rather than imported degenerate
const (
	minPolylinePoints = 2
	minPolygonPoints  = 3
)

type Decoder struct {
	opts Options
	log  logger.ILogger
}

func NewDecoder(opts Options, log logger.ILogger) *Decoder {
	return &Decoder{opts: opts, log: log}
}

// primitiveName - accepts either a bare primitive name or a full type URI
func primitiveName(shapeType string) string {
	if pos := strings.LastIndex(shapeType, "#"); pos >= 0 {
		return shapeType[pos+1:]
	}
	return shapeType
}

// Decode - converts one remote shape to a local annotation
func (d *Decoder) Decode(shape roiModel.RemoteShape) (*roiModel.LocalObject, error) {
	if err := shape.Plane.Validate(); err != nil {
		return nil, err
	}

	obj := &roiModel.LocalObject{
		Type:   roiModel.Annotation,
		Plane:  roiModel.PlaneForChannel(shape.Plane.Channel, shape.Plane.Z, shape.Plane.T),
		Locked: shape.IsLocked(),
	}

	if len(strings.TrimSpace(shape.Text)) > 0 {
		obj.Name = shape.Text
	}

	if shape.StrokeColour != packedColour.ArgbToRgba(d.opts.DefaultStrokeColour) && shape.StrokeColour != d.opts.TransparentFill {
		colour := packedColour.RgbaToArgb(shape.StrokeColour)
		obj.Colour = &colour
	}

	name := primitiveName(shape.Type)

	switch name {
	case roiModel.ShapeRectangle:
		obj.Geometry = roiModel.Rectangle{X: shape.X, Y: shape.Y, Width: shape.Width, Height: shape.Height}

	case roiModel.ShapeEllipse:
		obj.Geometry = roiModel.Ellipse{
			X:      shape.X - shape.RadiusX,
			Y:      shape.Y - shape.RadiusY,
			Width:  shape.RadiusX * 2,
			Height: shape.RadiusY * 2,
		}

	case roiModel.ShapeLine:
		obj.Geometry = roiModel.Line{X1: shape.X1, Y1: shape.Y1, X2: shape.X2, Y2: shape.Y2}

	case roiModel.ShapePolyline:
		pts, err := geometry.ParsePoints(shape.Points)
		if err != nil {
			return nil, fmt.Errorf("polyline: %v", err)
		}
		if len(pts) < minPolylinePoints {
			return nil, fmt.Errorf("polyline: needs at least %v points, got %v", minPolylinePoints, len(pts))
		}
		obj.Geometry = roiModel.Polyline{Points: orb.LineString(pts)}

	case roiModel.ShapePolygon:
		pts, err := geometry.ParsePoints(shape.Points)
		if err != nil {
			return nil, fmt.Errorf("polygon: %v", err)
		}
		if len(pts) < minPolygonPoints {
			return nil, fmt.Errorf("polygon: needs at least %v points, got %v", minPolygonPoints, len(pts))
		}
		obj.Geometry = roiModel.Polygon{Points: orb.Ring(pts)}

	case roiModel.ShapePoint:
		obj.Geometry = roiModel.Point{X: shape.X, Y: shape.Y}

	case roiModel.ShapeLabel:
		d.log.Infof("Label shape \"%v\" at %v,%v is not supported locally, importing it as a point", shape.Text, shape.X, shape.Y)
		obj.Geometry = roiModel.Point{X: shape.X, Y: shape.Y}

	default:
		// Includes masks, which we can't represent locally
		return nil, &UnsupportedShapeKindError{Kind: name}
	}

	return obj, nil
}
