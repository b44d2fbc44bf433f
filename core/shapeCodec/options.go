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

// Converts between local ROI objects and the remote server's shape records, in both directions.
// Style defaults are passed in via Options, nothing is looked up globally.
package shapeCodec

import "github.com/pixlise/roi-exchange/core/packedColour"

// Options - style settings used when a shape doesn't carry its own
type Options struct {
	// Stroke colour (ARGB) for objects without a classification or colour of their own
	DefaultStrokeColour int32

	// Fill colour (RGBA, as sent) for objects without a classification
	TransparentFill int32
}

func DefaultOptions() Options {
	return Options{
		DefaultStrokeColour: packedColour.PackARGB(255, 255, 0, 0),
		TransparentFill:     packedColour.TransparentFill,
	}
}
