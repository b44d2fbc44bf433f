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

package packedColour

import (
	"fmt"
	"math/rand"
	"testing"
)

func Example_argbToRgba() {
	// Opaque red
	fmt.Printf("%08x\n", uint32(ArgbToRgba(PackARGB(0xff, 0xff, 0, 0))))
	// Half transparent blue
	fmt.Printf("%08x\n", uint32(ArgbToRgba(PackARGB(0x80, 0, 0, 0xff))))
	// Transparent white ends up as the transparent fill sentinel
	fmt.Println(ArgbToRgba(PackARGB(0, 0xff, 0xff, 0xff)))
	fmt.Printf("%08x\n", uint32(RgbaToArgb(PackRGBA(0x12, 0x34, 0x56, 0x78))))

	// Output:
	// ff0000ff
	// 0000ff80
	// -256
	// 78123456
}

func Example_unpack() {
	fmt.Println(UnpackARGB(PackARGB(1, 2, 3, 4)))
	fmt.Println(UnpackRGBA(PackRGBA(5, 6, 7, 8)))

	// Output:
	// 2 3 4 1
	// 5 6 7 8
}

func TestRoundTrip(t *testing.T) {
	edge := []int32{0, -1, -256, 1, 0x7fffffff, -0x80000000, 0x00ffffff, 0x01020304}
	for _, v := range edge {
		if got := RgbaToArgb(ArgbToRgba(v)); got != v {
			t.Errorf("RgbaToArgb(ArgbToRgba(%x)) = %x", v, got)
		}
		if got := ArgbToRgba(RgbaToArgb(v)); got != v {
			t.Errorf("ArgbToRgba(RgbaToArgb(%x)) = %x", v, got)
		}
	}

	rnd := rand.New(rand.NewSource(42))
	for c := 0; c < 10000; c++ {
		v := int32(rnd.Uint32())
		if got := RgbaToArgb(ArgbToRgba(v)); got != v {
			t.Fatalf("RgbaToArgb(ArgbToRgba(%x)) = %x", v, got)
		}

		// Channels must survive the re-pack
		r, g, b, a := UnpackARGB(v)
		r2, g2, b2, a2 := UnpackRGBA(ArgbToRgba(v))
		if r != r2 || g != g2 || b != b2 || a != a2 {
			t.Fatalf("channels differ for %x", v)
		}
	}
}
