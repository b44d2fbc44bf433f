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
	"errors"
	"fmt"
)

// UnsupportedShapeKindError - a shape has no equivalent on the other side. Only fatal for the item
// it was raised for, batch conversions skip it and report it
type UnsupportedShapeKindError struct {
	Kind string
}

func (e *UnsupportedShapeKindError) Error() string {
	return fmt.Sprintf("unsupported ROI type: %v", e.Kind)
}

// IsUnsupportedShapeKind - true if err (or something it wraps) is an UnsupportedShapeKindError
func IsUnsupportedShapeKind(err error) bool {
	var target *UnsupportedShapeKindError
	return errors.As(err, &target)
}

// GeometryAssumptionWarning - the remote schema couldn't represent a shape exactly, so an
// approximation was sent instead. Not an error, the shape still gets converted
type GeometryAssumptionWarning struct {
	Object  string
	Message string
}

func (w GeometryAssumptionWarning) String() string {
	return fmt.Sprintf("%v: %v", w.Object, w.Message)
}

// ItemError - failure converting one item of a batch
type ItemError struct {
	Index int
	Item  string
	Err   error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("item %v (%v): %v", e.Index, e.Item, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// SkipReason - short category name used when counting skipped items
func SkipReason(err error) string {
	var unsupported *UnsupportedShapeKindError
	if errors.As(err, &unsupported) {
		return "unsupported " + unsupported.Kind
	}
	return "invalid"
}
