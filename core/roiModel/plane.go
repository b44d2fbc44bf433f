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

// Data model for regions of interest exchanged between a local object hierarchy
// and a remote image server. Local shapes are a closed set of geometry types
// (see Geometry), remote shapes are a flat record tagged with the remote
// schema's primitive name (see RemoteShape).
package roiModel

import "fmt"

// NoChannel - channel value meaning the shape applies to all channels
const NoChannel = -1

// PlaneCoordinate - the 2D slice of a multi-dimensional image a shape sits on
type PlaneCoordinate struct {
	Channel int `json:"c" bson:"c"`
	Z       int `json:"z" bson:"z"`
	T       int `json:"t" bson:"t"`
}

// NewPlane - plane not restricted to any channel
func NewPlane(z int, t int) PlaneCoordinate {
	return PlaneCoordinate{Channel: NoChannel, Z: z, T: t}
}

// PlaneForChannel - plane restricted to one channel. Negative channels collapse to NoChannel
func PlaneForChannel(c int, z int, t int) PlaneCoordinate {
	if c < 0 {
		c = NoChannel
	}
	return PlaneCoordinate{Channel: c, Z: z, T: t}
}

func (p PlaneCoordinate) HasChannel() bool {
	return p.Channel >= 0
}

func (p PlaneCoordinate) Validate() error {
	if p.Z < 0 || p.T < 0 {
		return fmt.Errorf("invalid plane %v: z and t must be >= 0", p)
	}
	return nil
}

func (p PlaneCoordinate) String() string {
	if !p.HasChannel() {
		return fmt.Sprintf("c=*,z=%v,t=%v", p.Z, p.T)
	}
	return fmt.Sprintf("c=%v,z=%v,t=%v", p.Channel, p.Z, p.T)
}
