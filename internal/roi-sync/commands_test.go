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

package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/pixlise/roi-exchange/core/fileaccess"
	"github.com/pixlise/roi-exchange/core/gateway"
	"github.com/pixlise/roi-exchange/core/hierarchy"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/roisync"
	"github.com/pixlise/roi-exchange/core/shapeCodec"
	"github.com/pixlise/roi-exchange/core/utils"
)

func Example_parseArgs() {
	var out bytes.Buffer

	opts, err := parseArgs([]string{"import-rois", "-project", "s3://bucket/image.json", "-remove-detections"}, &out)
	fmt.Printf("%v %v %+v %v\n", opts.command, opts.projectPath, opts.objects, err)

	opts, err = parseArgs([]string{"send-kv", "-project", "p.json", "-policy", "replace-and-add", "-image", "42"}, &out)
	fmt.Println(opts.command, opts.policy, opts.imageID, err)

	_, err = parseArgs([]string{"import-kv", "-project", "p.json", "-policy", "merge"}, &out)
	fmt.Println(err)

	_, err = parseArgs([]string{"import-channels"}, &out)
	fmt.Println(err)

	_, err = parseArgs([]string{"sync-everything"}, &out)
	fmt.Println(err)

	// Output:
	// import-rois s3://bucket/image.json {RemoveAnnotations:false RemoveDetections:true} <nil>
	// send-kv replace 42 <nil>
	// unknown merge policy: "merge", expected one of keep, replace, delete
	// -project is required
	// usage: roi-sync <import-rois|send-rois|import-kv|send-kv|import-channels> -project <path or s3://bucket/path> [flags]
}

func makeData() *hierarchy.ImageData {
	data := hierarchy.NewImageData(8, &utils.SequentialIDGen{Prefix: "o"})
	data.Hierarchy.AddObjects([]*roiModel.LocalObject{
		{Type: roiModel.Annotation, Name: "Tumour", Geometry: roiModel.Rectangle{X: 0, Y: 0, Width: 50, Height: 50}, Plane: roiModel.NewPlane(0, 0)},
		{Type: roiModel.Annotation, Name: "Stroma", Geometry: roiModel.Rectangle{X: 100, Y: 0, Width: 50, Height: 50}, Plane: roiModel.NewPlane(0, 0)},
	})
	data.Metadata["Scanner"] = "S1"
	data.Channels = []roiModel.ChannelSetting{{Index: 0, Name: "Channel 1", Min: 0, Max: 255}}
	return data
}

func Example_runCommand() {
	gw := gateway.NewMockGateway()
	gw.KeyValues[8] = map[string]string{"Stain": "DAPI", "Scanner": "S2"}
	gw.Channels[8] = []roiModel.ChannelSetting{{Index: 0, Name: "DAPI", Min: 10, Max: 100, Colour: -16776961}}

	syncer := roisync.NewSyncer(gw, shapeCodec.DefaultOptions(), &logger.NullLogger{})
	data := makeData()
	ctx := context.Background()

	summary, modified, err := runCommand(ctx, options{command: "send-rois", selectedOnly: "o2"}, data, syncer)
	fmt.Println(summary, modified, err)
	fmt.Println(gw.Shapes[8][0].Text)

	summary, modified, err = runCommand(ctx, options{command: "import-kv"}, data, syncer)
	fmt.Println(summary, modified, err)
	fmt.Println(data.Metadata)

	summary, modified, err = runCommand(ctx, options{command: "import-kv"}, data, syncer)
	fmt.Println(summary, modified, err)

	opts := options{command: "import-channels"}
	opts.channelSettings.IncludeNames = true
	summary, modified, err = runCommand(ctx, opts, data, syncer)
	fmt.Println(summary, modified, err)
	fmt.Println(data.Channels[0].Name, data.Channels[0].Max)

	_, _, err = runCommand(ctx, options{command: "send-rois", selectedOnly: "o2,o9,o7"}, data, syncer)
	fmt.Println(err)

	_, _, err = runCommand(ctx, options{command: "send-rois"}, hierarchy.NewImageData(0, &utils.IDGen{}), syncer)
	fmt.Println(err)

	// Output:
	// converted 1, skipped 0; sent 1 shapes, deleted existing: false false <nil>
	// Stroma
	// existing: 1, added: 1, updated: 0, removed: 0 true <nil>
	// map[Scanner:S1 Stain:DAPI]
	// existing: 2, added: 0, updated: 0, removed: 0 false <nil>
	// 1 of 1 channels changed true <nil>
	// DAPI 255
	// objects not found in project: o7, o9
	// no image id given and none stored in project
}

func TestImportROIsIntoProjectFile(t *testing.T) {
	fs := &fileaccess.FSAccess{}
	path := filepath.Join(t.TempDir(), "project.json")

	err := makeData().Save(fs, "", path)
	if err != nil {
		t.Fatal(err)
	}

	gw := gateway.NewMockGateway()
	gw.Shapes[8] = []roiModel.RemoteShape{
		{Type: roiModel.ShapePoint, Plane: roiModel.NewPlane(0, 0), X: 10, Y: 10, StrokeColour: -16776961},
	}
	syncer := roisync.NewSyncer(gw, shapeCodec.DefaultOptions(), &logger.NullLogger{})

	data, err := hierarchy.LoadImageData(fs, "", path, &utils.SequentialIDGen{Prefix: "n"})
	if err != nil {
		t.Fatal(err)
	}

	opts := options{command: "import-rois"}
	opts.objects.RemoveAnnotations = true
	_, modified, err := runCommand(context.Background(), opts, data, syncer)
	if err != nil || !modified {
		t.Fatalf("import-rois: %v, %v", modified, err)
	}

	err = data.Save(fs, "", path)
	if err != nil {
		t.Fatal(err)
	}

	reloaded, err := hierarchy.LoadImageData(fs, "", path, &utils.SequentialIDGen{Prefix: "r"})
	if err != nil {
		t.Fatal(err)
	}
	objs := reloaded.Hierarchy.GetObjects()
	if len(objs) != 1 || roiModel.KindOf(objs[0].Geometry) != roiModel.KindPoint {
		t.Errorf("unexpected objects after reload: %v", objs)
	}
}
