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

// Conversion between the two 32-bit packed colour layouts in play:
// locally colours are packed as ARGB (alpha in the top byte), the remote shape
// schema packs them as RGBA (alpha in the bottom byte). Getting the byte order
// wrong doesn't fail anywhere, it just produces the wrong colour on the other side,
// so all conversions go through here.
package packedColour

// TransparentFill - RGBA packed white with zero alpha, sent as the fill colour of
// shapes that have no classification
const TransparentFill int32 = -256

// ArgbToRgba - moves alpha from the top byte to the bottom byte
func ArgbToRgba(argb int32) int32 {
	u := uint32(argb)
	return int32(u<<8 | u>>24)
}

// RgbaToArgb - moves alpha from the bottom byte to the top byte
func RgbaToArgb(rgba int32) int32 {
	u := uint32(rgba)
	return int32(u>>8 | u<<24)
}

// PackARGB - packs 8-bit channels in A,R,G,B order
func PackARGB(a, r, g, b uint8) int32 {
	return int32(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// PackRGBA - packs 8-bit channels in R,G,B,A order
func PackRGBA(r, g, b, a uint8) int32 {
	return int32(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// UnpackARGB - returns r, g, b, a of an ARGB packed value
func UnpackARGB(argb int32) (r, g, b, a uint8) {
	u := uint32(argb)
	return uint8(u >> 16), uint8(u >> 8), uint8(u), uint8(u >> 24)
}

// UnpackRGBA - returns r, g, b, a of an RGBA packed value
func UnpackRGBA(rgba int32) (r, g, b, a uint8) {
	u := uint32(rgba)
	return uint8(u >> 24), uint8(u >> 16), uint8(u >> 8), uint8(u)
}
