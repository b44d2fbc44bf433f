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

package geometry

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

func Example_pointsToString() {
	fmt.Printf("\"%v\"\n", PointsToString([]orb.Point{{1, 2}, {3.5, -4}, {0.1, 1e-7}}))
	fmt.Printf("\"%v\"\n", PointsToString(nil))

	// Output:
	// "1,2 3.5,-4 0.1,0.0000001"
	// ""
}

func Example_parsePoints() {
	fmt.Println(ParsePoints("1,2 3.5,-4"))
	fmt.Println(ParsePoints("  10,20\n30,40  "))
	fmt.Println(ParsePoints(""))
	fmt.Println(ParsePoints("1,2 3"))
	fmt.Println(ParsePoints("1,2,3"))
	fmt.Println(ParsePoints("a,2"))

	// Output:
	// [[1 2] [3.5 -4]] <nil>
	// [[10 20] [30 40]] <nil>
	// [] <nil>
	// [] invalid point "3", expected x,y
	// [] invalid point "1,2,3", expected x,y
	// [] invalid x in point "a,2": strconv.ParseFloat: parsing "a": invalid syntax
}

func TestPointStringRoundTrip(t *testing.T) {
	tests := [][]orb.Point{
		{{0, 0}},
		{{1.25, 2.5}, {3, 4}, {-5.125, 6}},
		{{math.Pi, math.E}, {1e10, -1e-10}, {123456.789, 0.000001}},
		{{10, 10}, {10, 10}, {20, 20}, {10, 10}},
	}

	for _, pts := range tests {
		got, err := ParsePoints(PointsToString(pts))
		if err != nil {
			t.Fatalf("ParsePoints failed for %v: %v", pts, err)
		}
		if !reflect.DeepEqual(got, pts) {
			t.Errorf("round trip changed %v to %v", pts, got)
		}
	}
}

func makeSquare(x, y, size float64) orb.Ring {
	return orb.Ring{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y}}
}

func Example_decompose() {
	withHoles := orb.Polygon{makeSquare(0, 0, 100), makeSquare(10, 10, 5), makeSquare(50, 50, 5)}
	plain := orb.Polygon{makeSquare(200, 200, 10)}

	parts := Decompose(roiModel.CompoundPolygon{Polygons: orb.MultiPolygon{withHoles}})
	fmt.Println(len(parts))
	fmt.Println(parts[0].Points[2])
	fmt.Println(parts[1].Points[0])
	fmt.Println(parts[2].Points[0])

	parts = Decompose(roiModel.CompoundPolygon{Polygons: orb.MultiPolygon{withHoles, plain}})
	fmt.Println(len(parts))
	fmt.Println(parts[3].Points[0])

	fmt.Println(len(Decompose(roiModel.CompoundPolygon{})))

	// Output:
	// 3
	// [100 100]
	// [10 10]
	// [50 50]
	// 4
	// [200 200]
	// 0
}

func Example_decomposeObject() {
	obj := &roiModel.LocalObject{
		Name:     "tissue",
		Plane:    roiModel.PlaneForChannel(1, 2, 0),
		Class:    &roiModel.Classification{Name: "Stroma", Colour: 0x7f00ff00},
		Geometry: roiModel.CompoundPolygon{Polygons: orb.MultiPolygon{{makeSquare(0, 0, 10), makeSquare(2, 2, 2)}}},
	}

	for _, part := range DecomposeObject(obj) {
		fmt.Printf("%v %v %v\n", part, part.ClassName(), len(part.Geometry.(roiModel.Polygon).Points))
	}

	rect := &roiModel.LocalObject{Geometry: roiModel.Rectangle{Width: 1, Height: 1}}
	fmt.Println(DecomposeObject(rect)[0] == rect)

	// Output:
	// annotation polygon "tissue" (c=1,z=2,t=0) Stroma 5
	// annotation polygon "tissue" (c=1,z=2,t=0) Stroma 5
	// true
}

func Example_ellipseBounds() {
	e := roiModel.Ellipse{X: 10, Y: 20, Width: 40, Height: 20}
	fmt.Println(EllipseBounds(e), IsAxisAligned(e))

	e.Rotation = math.Pi / 2
	b := EllipseBounds(e)
	fmt.Printf("%.3f %.3f %.3f %.3f %v\n", b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y(), IsAxisAligned(e))

	e.Rotation = math.Pi / 4
	b = EllipseBounds(e)
	fmt.Printf("%.3f %.3f %v\n", b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y(), IsAxisAligned(e))

	circle := roiModel.Ellipse{Width: 10, Height: 10, Rotation: 1}
	fmt.Println(IsAxisAligned(circle))

	// Output:
	// {[10 20] [50 40]} true
	// 20.000 10.000 40.000 50.000 true
	// 31.623 31.623 false
	// true
}

func Example_measure() {
	square := roiModel.Polygon{Points: makeSquare(0, 0, 10)}
	fmt.Println(Centroid(square), Area(square))

	open := roiModel.Polygon{Points: orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	fmt.Println(Centroid(open), Area(open))

	fmt.Println(Centroid(roiModel.Rectangle{X: 1, Y: 1, Width: 4, Height: 2}))
	fmt.Println(Centroid(roiModel.Line{X1: 0, Y1: 0, X2: 4, Y2: 2}))
	fmt.Println(Centroid(roiModel.MultiPoint{Points: orb.MultiPoint{{0, 0}, {2, 4}}}))
	fmt.Println(Area(roiModel.Rectangle{Width: 4, Height: 2}), Area(roiModel.Line{X2: 5}))
	fmt.Println(Bound(roiModel.Point{X: 3, Y: 4}))

	// Output:
	// [5 5] 100
	// [5 5] 100
	// [3 2]
	// [2 1]
	// [1 2]
	// 8 0
	// {[3 4] [3 4]}
}

func Example_contains() {
	square := roiModel.Polygon{Points: makeSquare(0, 0, 10)}
	fmt.Println(Contains(square, orb.Point{5, 5}), Contains(square, orb.Point{15, 5}))

	ellipse := roiModel.Ellipse{X: 0, Y: 0, Width: 20, Height: 10}
	fmt.Println(Contains(ellipse, orb.Point{18, 5}), Contains(ellipse, orb.Point{10, 9.5}), Contains(ellipse, orb.Point{1, 1}))

	ellipse.Rotation = math.Pi / 2
	fmt.Println(Contains(ellipse, orb.Point{18, 5}), Contains(ellipse, orb.Point{10, 13}))

	holed := roiModel.CompoundPolygon{Polygons: orb.MultiPolygon{{makeSquare(0, 0, 10), makeSquare(4, 4, 2)}}}
	fmt.Println(Contains(holed, orb.Point{1, 1}), Contains(holed, orb.Point{5, 5}))

	fmt.Println(Contains(roiModel.Point{X: 1, Y: 1}, orb.Point{1, 1}))

	// Output:
	// true false
	// true true false
	// false true
	// true false
	// false
}
