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
	"fmt"
)

// ObjectType - the category of an object in the local hierarchy. Annotations and detections
// are reconciled independently
type ObjectType int

const (
	Annotation ObjectType = iota
	Detection
)

func (t ObjectType) String() string {
	if t == Detection {
		return "detection"
	}
	return "annotation"
}

// ParseObjectType - accepts what String produces, anything else is an error
func ParseObjectType(s string) (ObjectType, error) {
	switch s {
	case "annotation", "":
		return Annotation, nil
	case "detection":
		return Detection, nil
	}
	return Annotation, fmt.Errorf("unknown object type: %v", s)
}

// Classification - the class/category label of an object and the colour it's drawn with
type Classification struct {
	Name   string `json:"name"`
	Colour int32  `json:"colour"` // ARGB
}

// LocalObject - an annotated shape as held by the local hierarchy
type LocalObject struct {
	ID       string
	Type     ObjectType
	Geometry Geometry
	Plane    PlaneCoordinate
	Name     string
	Class    *Classification
	Colour   *int32 // ARGB, overrides the class colour when drawn
	Locked   bool
	ParentID string
}

func (o *LocalObject) String() string {
	name := o.Name
	if len(name) <= 0 {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%v %v \"%v\" (%v)", o.Type, KindOf(o.Geometry), name, o.Plane)
}

// ClassName - empty if unclassified
func (o *LocalObject) ClassName() string {
	if o.Class == nil {
		return ""
	}
	return o.Class.Name
}

// KeyValueEntry - a single metadata pair attached to an image
type KeyValueEntry struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

// ChannelSetting - display settings of one image channel. Colour is packed RGBA when read from
// the remote side and ARGB locally; channelSettings.Apply converts between them
type ChannelSetting struct {
	Index  int     `json:"index" bson:"index"`
	Name   string  `json:"name" bson:"name"`
	Min    float64 `json:"min" bson:"min"`
	Max    float64 `json:"max" bson:"max"`
	Colour int32   `json:"colour" bson:"colour"`
}
