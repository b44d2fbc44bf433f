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

	"github.com/paulmach/orb"
	"github.com/pixlise/roi-exchange/core/geometry"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/packedColour"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

type Encoder struct {
	opts Options
	log  logger.ILogger
}

func NewEncoder(opts Options, log logger.ILogger) *Encoder {
	return &Encoder{opts: opts, log: log}
}

// Encoded - what one local object turned into
type Encoded struct {
	Shapes   []roiModel.RemoteShape
	Warnings []GeometryAssumptionWarning
}

// Encode - converts one local object to remote shapes. Most kinds produce exactly one shape, multi-points
// produce one per point and compound polygons one per ring (see geometry.DecomposeObject)
func (e *Encoder) Encode(obj *roiModel.LocalObject) (Encoded, error) {
	result := Encoded{}
	base := e.baseShape(obj)

	switch g := obj.Geometry.(type) {
	case roiModel.Rectangle:
		s := base
		s.Type = roiModel.ShapeRectangle
		s.X, s.Y, s.Width, s.Height = g.X, g.Y, g.Width, g.Height
		result.Shapes = append(result.Shapes, s)

	case roiModel.Ellipse:
		bounds := geometry.EllipseBounds(g)
		centre := bounds.Center()
		if !geometry.IsAxisAligned(g) {
			w := GeometryAssumptionWarning{
				Object:  obj.String(),
				Message: fmt.Sprintf("ellipse rotated by %v rad sent as its axis aligned bounding ellipse", g.Rotation),
			}
			e.log.Infof("%v", w)
			result.Warnings = append(result.Warnings, w)
		}

		s := base
		s.Type = roiModel.ShapeEllipse
		s.X, s.Y = centre.X(), centre.Y()
		s.RadiusX = (bounds.Max.X() - bounds.Min.X()) / 2
		s.RadiusY = (bounds.Max.Y() - bounds.Min.Y()) / 2
		result.Shapes = append(result.Shapes, s)

	case roiModel.Line:
		s := base
		s.Type = roiModel.ShapeLine
		s.X1, s.Y1, s.X2, s.Y2 = g.X1, g.Y1, g.X2, g.Y2
		result.Shapes = append(result.Shapes, s)

	case roiModel.Polyline:
		s := base
		s.Type = roiModel.ShapePolyline
		s.Points = geometry.PointsToString(g.Points)
		result.Shapes = append(result.Shapes, s)

	case roiModel.Polygon:
		result.Shapes = append(result.Shapes, polygonShape(base, g.Points))

	case roiModel.Point:
		result.Shapes = append(result.Shapes, pointShape(base, g.X, g.Y))

	case roiModel.MultiPoint:
		for _, pt := range g.Points {
			result.Shapes = append(result.Shapes, pointShape(base, pt.X(), pt.Y()))
		}

	case roiModel.CompoundPolygon:
		// Each ring becomes its own polygon object sharing obj's plane, name, class and colour
		for _, part := range geometry.DecomposeObject(obj) {
			partEncoded, err := e.Encode(part)
			if err != nil {
				return Encoded{}, err
			}
			result.Shapes = append(result.Shapes, partEncoded.Shapes...)
		}

	default:
		return Encoded{}, &UnsupportedShapeKindError{Kind: fmt.Sprintf("%T", obj.Geometry)}
	}

	return result, nil
}

// baseShape - the fields every shape made from obj has in common: plane, text and colours
func (e *Encoder) baseShape(obj *roiModel.LocalObject) roiModel.RemoteShape {
	s := roiModel.RemoteShape{
		Plane: obj.Plane,
		Text:  obj.Name,
	}

	if obj.Class != nil {
		s.FillColour = packedColour.ArgbToRgba(obj.Class.Colour)
		s.StrokeColour = s.FillColour
	} else {
		s.FillColour = e.opts.TransparentFill
		stroke := e.opts.DefaultStrokeColour
		if obj.Colour != nil {
			stroke = *obj.Colour
		}
		s.StrokeColour = packedColour.ArgbToRgba(stroke)
	}

	if obj.Locked {
		locked := true
		s.Locked = &locked
	}

	return s
}

func polygonShape(base roiModel.RemoteShape, ring orb.Ring) roiModel.RemoteShape {
	base.Type = roiModel.ShapePolygon
	base.Points = geometry.PointsToString(ring)
	return base
}

func pointShape(base roiModel.RemoteShape, x float64, y float64) roiModel.RemoteShape {
	base.Type = roiModel.ShapePoint
	base.X, base.Y = x, y
	return base
}
