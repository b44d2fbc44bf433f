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

package hierarchy

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pixlise/roi-exchange/core/fileaccess"
	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/utils"
)

// ImageData - everything we hold locally for one image: the object hierarchy, key-value metadata
// and channel display settings
type ImageData struct {
	ImageID   int64
	Hierarchy *MemoryHierarchy
	Metadata  map[string]string
	Channels  []roiModel.ChannelSetting
}

func NewImageData(imageID int64, idGen utils.IDGenerator) *ImageData {
	return &ImageData{
		ImageID:   imageID,
		Hierarchy: NewMemoryHierarchy(idGen),
		Metadata:  map[string]string{},
		Channels:  []roiModel.ChannelSetting{},
	}
}

// What goes into the project file. Objects are GeoJSON features, with the shape kind and anything
// GeoJSON can't express (rotation, plane, classification) stored in properties
type projectFile struct {
	ImageID  int64                      `json:"imageId"`
	Metadata map[string]string          `json:"metadata"`
	Channels []roiModel.ChannelSetting  `json:"channels"`
	Objects  *geojson.FeatureCollection `json:"objects"`
}

// Feature property names
const (
	propShape      = "shape"
	propObjectType = "objectType"
	propName       = "name"
	propClassName  = "className"
	propClassColor = "classColour"
	propColour     = "colour"
	propLocked     = "locked"
	propRotation   = "rotation"
	propChannel    = "c"
	propZ          = "z"
	propT          = "t"
	propParentID   = "parentId"
)

// Save - writes the project file, objects in hierarchy order
func (d *ImageData) Save(fs fileaccess.FileAccess, bucket string, path string) error {
	fc := geojson.NewFeatureCollection()
	for _, obj := range d.Hierarchy.GetObjects() {
		f, err := objectToFeature(obj)
		if err != nil {
			return err
		}
		fc.Append(f)
	}

	return fs.WriteJSON(bucket, path, projectFile{ImageID: d.ImageID, Metadata: d.Metadata, Channels: d.Channels, Objects: fc})
}

// LoadImageData - reads a project file written by Save. Parent links are taken from the file, call
// ResolveHierarchy if they need recomputing
func LoadImageData(fs fileaccess.FileAccess, bucket string, path string, idGen utils.IDGenerator) (*ImageData, error) {
	file := projectFile{}
	err := fs.ReadJSON(bucket, path, &file, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %v: %v", path, err)
	}

	result := NewImageData(file.ImageID, idGen)
	if file.Metadata != nil {
		result.Metadata = file.Metadata
	}
	if file.Channels != nil {
		result.Channels = file.Channels
	}

	if file.Objects != nil {
		objs := []*roiModel.LocalObject{}
		for c, f := range file.Objects.Features {
			obj, err := featureToObject(f)
			if err != nil {
				return nil, fmt.Errorf("project file %v feature %v: %v", path, c, err)
			}
			objs = append(objs, obj)
		}
		result.Hierarchy.AddObjects(objs)
	}

	return result, nil
}

func objectToFeature(obj *roiModel.LocalObject) (*geojson.Feature, error) {
	var g orb.Geometry
	props := geojson.Properties{}

	switch geom := obj.Geometry.(type) {
	case roiModel.Rectangle:
		g = orb.Bound{Min: orb.Point{geom.X, geom.Y}, Max: orb.Point{geom.X + geom.Width, geom.Y + geom.Height}}.ToPolygon()
	case roiModel.Ellipse:
		// Stored as its unrotated box, rotation kept separately
		g = orb.Bound{Min: orb.Point{geom.X, geom.Y}, Max: orb.Point{geom.X + geom.Width, geom.Y + geom.Height}}.ToPolygon()
		props[propRotation] = geom.Rotation
	case roiModel.Line:
		g = orb.LineString{{geom.X1, geom.Y1}, {geom.X2, geom.Y2}}
	case roiModel.Polyline:
		g = geom.Points
	case roiModel.Polygon:
		g = orb.Polygon{geom.Points}
	case roiModel.Point:
		g = orb.Point{geom.X, geom.Y}
	case roiModel.MultiPoint:
		g = geom.Points
	case roiModel.CompoundPolygon:
		g = geom.Polygons
	default:
		return nil, fmt.Errorf("object %v has unsupported geometry %T", obj.ID, obj.Geometry)
	}

	f := geojson.NewFeature(g)
	f.ID = obj.ID
	f.Properties = props

	props[propShape] = roiModel.KindOf(obj.Geometry).String()
	props[propObjectType] = obj.Type.String()
	props[propChannel] = obj.Plane.Channel
	props[propZ] = obj.Plane.Z
	props[propT] = obj.Plane.T

	if len(obj.Name) > 0 {
		props[propName] = obj.Name
	}
	if obj.Class != nil {
		props[propClassName] = obj.Class.Name
		props[propClassColor] = obj.Class.Colour
	}
	if obj.Colour != nil {
		props[propColour] = *obj.Colour
	}
	if obj.Locked {
		props[propLocked] = true
	}
	if len(obj.ParentID) > 0 {
		props[propParentID] = obj.ParentID
	}

	return f, nil
}

func featureToObject(f *geojson.Feature) (*roiModel.LocalObject, error) {
	props := f.Properties
	if props == nil {
		props = geojson.Properties{}
	}

	objTypeName, err := stringProp(props, propObjectType, "")
	if err != nil {
		return nil, err
	}
	objType, err := roiModel.ParseObjectType(objTypeName)
	if err != nil {
		return nil, err
	}

	obj := &roiModel.LocalObject{Type: objType}

	channel, err := intProp(props, propChannel, roiModel.NoChannel)
	if err != nil {
		return nil, err
	}
	z, err := intProp(props, propZ, 0)
	if err != nil {
		return nil, err
	}
	t, err := intProp(props, propT, 0)
	if err != nil {
		return nil, err
	}
	obj.Plane = roiModel.PlaneForChannel(channel, z, t)

	if obj.Name, err = stringProp(props, propName, ""); err != nil {
		return nil, err
	}
	if obj.Locked, err = boolProp(props, propLocked, false); err != nil {
		return nil, err
	}
	if obj.ParentID, err = stringProp(props, propParentID, ""); err != nil {
		return nil, err
	}

	if id, ok := f.ID.(string); ok {
		obj.ID = id
	}

	if _, ok := props[propClassName]; ok {
		className, err := stringProp(props, propClassName, "")
		if err != nil {
			return nil, err
		}
		classColour, err := intProp(props, propClassColor, 0)
		if err != nil {
			return nil, err
		}
		obj.Class = &roiModel.Classification{Name: className, Colour: int32(classColour)}
	}
	if _, ok := props[propColour]; ok {
		colour, err := intProp(props, propColour, 0)
		if err != nil {
			return nil, err
		}
		c32 := int32(colour)
		obj.Colour = &c32
	}

	shapeName, err := stringProp(props, propShape, "")
	if err != nil {
		return nil, err
	}
	obj.Geometry, err = featureGeometry(roiModel.ParseGeometryKind(shapeName), f.Geometry, props)
	if err != nil {
		return nil, err
	}

	return obj, nil
}

// Property readers returning an error for a value of the wrong type, where geojson.Properties.MustX
// would panic. Numbers arrive as float64 from JSON, or as ints when the feature was built in memory

func stringProp(props geojson.Properties, name string, def string) (string, error) {
	v, ok := props[name]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, fmt.Errorf("property %v: expected a string, got %T: %v", name, v, v)
	}
	return s, nil
}

func boolProp(props geojson.Properties, name string, def bool) (bool, error) {
	v, ok := props[name]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, fmt.Errorf("property %v: expected a bool, got %T: %v", name, v, v)
	}
	return b, nil
}

func floatProp(props geojson.Properties, name string, def float64) (float64, error) {
	v, ok := props[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return def, fmt.Errorf("property %v: expected a number, got %T: %v", name, v, v)
}

func intProp(props geojson.Properties, name string, def int) (int, error) {
	v, ok := props[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return def, fmt.Errorf("property %v: expected an integer, got %v", name, n)
		}
		return int(n), nil
	}
	return def, fmt.Errorf("property %v: expected an integer, got %T: %v", name, v, v)
}

func featureGeometry(kind roiModel.GeometryKind, g orb.Geometry, props geojson.Properties) (roiModel.Geometry, error) {
	switch kind {
	case roiModel.KindRectangle, roiModel.KindEllipse:
		if g == nil {
			break
		}
		b := g.Bound()
		if kind == roiModel.KindRectangle {
			return roiModel.Rectangle{X: b.Min.X(), Y: b.Min.Y(), Width: b.Max.X() - b.Min.X(), Height: b.Max.Y() - b.Min.Y()}, nil
		}
		rotation, err := floatProp(props, propRotation, 0)
		if err != nil {
			return nil, err
		}
		return roiModel.Ellipse{X: b.Min.X(), Y: b.Min.Y(), Width: b.Max.X() - b.Min.X(), Height: b.Max.Y() - b.Min.Y(), Rotation: rotation}, nil
	case roiModel.KindLine:
		if ls, ok := g.(orb.LineString); ok && len(ls) == 2 {
			return roiModel.Line{X1: ls[0].X(), Y1: ls[0].Y(), X2: ls[1].X(), Y2: ls[1].Y()}, nil
		}
	case roiModel.KindPolyline:
		if ls, ok := g.(orb.LineString); ok {
			return roiModel.Polyline{Points: ls}, nil
		}
	case roiModel.KindPolygon:
		if p, ok := g.(orb.Polygon); ok && len(p) == 1 {
			return roiModel.Polygon{Points: p[0]}, nil
		}
	case roiModel.KindPoint:
		if pt, ok := g.(orb.Point); ok {
			return roiModel.Point{X: pt.X(), Y: pt.Y()}, nil
		}
	case roiModel.KindMultiPoint:
		if mp, ok := g.(orb.MultiPoint); ok {
			return roiModel.MultiPoint{Points: mp}, nil
		}
	case roiModel.KindCompoundPolygon:
		if mp, ok := g.(orb.MultiPolygon); ok {
			return roiModel.CompoundPolygon{Polygons: mp}, nil
		}
	default:
		return nil, fmt.Errorf("unknown shape kind: %v", kind)
	}

	return nil, fmt.Errorf("geometry %T does not match shape kind %v", g, kind)
}
