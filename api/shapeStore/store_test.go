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

package shapeStore

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/pixlise/roi-exchange/core/errorwithstatus"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/mongoDBConnection"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

func rect(x float64) roiModel.RemoteShape {
	return roiModel.RemoteShape{Type: roiModel.ShapeRectangle, Plane: roiModel.NewPlane(0, 0), X: x, Y: 1, Width: 2, Height: 3, FillColour: -256, StrokeColour: -16776961}
}

// Runs the same checks against any Store implementation
func checkStore(t *testing.T, store Store, imageID int64) {
	ctx := context.Background()

	shapes, err := store.GetShapes(ctx, imageID)
	if err != nil || len(shapes) != 0 {
		t.Fatalf("expected no shapes on new image, got %v, %v", shapes, err)
	}

	err = store.PutShapes(ctx, imageID, []roiModel.RemoteShape{rect(1), rect(2)})
	if err != nil {
		t.Fatal(err)
	}
	err = store.PutShapes(ctx, imageID, []roiModel.RemoteShape{rect(3)})
	if err != nil {
		t.Fatal(err)
	}

	shapes, err = store.GetShapes(ctx, imageID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(shapes, []roiModel.RemoteShape{rect(1), rect(2), rect(3)}) {
		t.Errorf("shapes not appended: %+v", shapes)
	}

	err = store.DeleteShapes(ctx, imageID)
	if err != nil {
		t.Fatal(err)
	}
	shapes, _ = store.GetShapes(ctx, imageID)
	if len(shapes) != 0 {
		t.Errorf("shapes not deleted: %+v", shapes)
	}

	kvs := []roiModel.KeyValueEntry{{Key: "Stain", Value: "DAPI"}, {Key: "Stain", Value: "CD3"}}
	err = store.PutKeyValues(ctx, imageID, kvs)
	if err != nil {
		t.Fatal(err)
	}
	err = store.PutKeyValues(ctx, imageID, kvs[1:])
	if err != nil {
		t.Fatal(err)
	}
	readKVs, err := store.GetKeyValues(ctx, imageID)
	if err != nil || !reflect.DeepEqual(readKVs, kvs[1:]) {
		t.Errorf("key-values not replaced: %v, %v", readKVs, err)
	}

	_, err = store.GetChannelSettings(ctx, imageID)
	if errorwithstatus.GetStatus(err) != 404 {
		t.Errorf("expected not found for channel settings, got: %v", err)
	}

	channels := []roiModel.ChannelSetting{{Index: 0, Name: "DAPI", Min: 0, Max: 255, Colour: -16776961}}
	err = store.PutChannelSettings(ctx, imageID, channels)
	if err != nil {
		t.Fatal(err)
	}
	readChannels, err := store.GetChannelSettings(ctx, imageID)
	if err != nil || !reflect.DeepEqual(readChannels, channels) {
		t.Errorf("channel settings not stored: %v, %v", readChannels, err)
	}
}

func TestMemoryStore(t *testing.T) {
	checkStore(t, NewMemoryStore(), 7)
}

func TestMongoStore(t *testing.T) {
	if _, set := mongoDBConnection.LocalMongoURI(); !set {
		t.Skip("LOCAL_MONGO_URI not set, skipping mongo store test")
	}

	log := &logger.NullLogger{}
	client, err := mongoDBConnection.Connect(nil, "", "", log)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(mongoDBConnection.GetDatabaseName("roi-exchange", "unit-test"))
	defer db.Drop(context.Background())

	err = InitCollections(context.Background(), db, log)
	if err != nil {
		t.Fatal(err)
	}

	checkStore(t, NewMongoStore(db, log), time.Now().UnixNano())
}

func Example_memoryStoreCopies() {
	ctx := context.Background()
	store := NewMemoryStore()

	kvs := []roiModel.KeyValueEntry{{Key: "Gain", Value: "2"}}
	store.PutKeyValues(ctx, 3, kvs)
	kvs[0].Value = "changed"

	read, _ := store.GetKeyValues(ctx, 3)
	read[0].Value = "also changed"

	read, _ = store.GetKeyValues(ctx, 3)
	fmt.Println(read)

	_, err := store.GetChannelSettings(ctx, 3)
	fmt.Println(err)

	// Output:
	// [{Gain 2}]
	// channel settings for image 3 not found
}
