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

	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ShapesCollection    = "shapes"
	KeyValuesCollection = "keyValues"
	ChannelsCollection  = "channelSettings"
)

// One document per image in each collection, keyed by image id
type shapesDoc struct {
	ImageID int64                  `bson:"_id"`
	Shapes  []roiModel.RemoteShape `bson:"shapes"`
}

type keyValuesDoc struct {
	ImageID   int64                    `bson:"_id"`
	KeyValues []roiModel.KeyValueEntry `bson:"keyValues"`
}

type channelsDoc struct {
	ImageID  int64                     `bson:"_id"`
	Channels []roiModel.ChannelSetting `bson:"channels"`
}

type MongoStore struct {
	db  *mongo.Database
	log logger.ILogger
}

func NewMongoStore(db *mongo.Database, log logger.ILogger) *MongoStore {
	return &MongoStore{db: db, log: log}
}

func (m *MongoStore) GetShapes(ctx context.Context, imageID int64) ([]roiModel.RemoteShape, error) {
	doc := shapesDoc{}
	err := m.db.Collection(ShapesCollection).FindOne(ctx, bson.M{"_id": imageID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []roiModel.RemoteShape{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read shapes for image %v", imageID)
	}
	if doc.Shapes == nil {
		doc.Shapes = []roiModel.RemoteShape{}
	}
	return doc.Shapes, nil
}

func (m *MongoStore) PutShapes(ctx context.Context, imageID int64, shapes []roiModel.RemoteShape) error {
	if len(shapes) <= 0 {
		return nil
	}

	_, err := m.db.Collection(ShapesCollection).UpdateOne(
		ctx,
		bson.M{"_id": imageID},
		bson.M{"$push": bson.M{"shapes": bson.M{"$each": shapes}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to write %v shapes for image %v", len(shapes), imageID)
	}
	return nil
}

func (m *MongoStore) DeleteShapes(ctx context.Context, imageID int64) error {
	result, err := m.db.Collection(ShapesCollection).DeleteOne(ctx, bson.M{"_id": imageID})
	if err != nil {
		return errors.Wrapf(err, "failed to delete shapes for image %v", imageID)
	}
	m.log.Debugf("Deleted %v shape documents for image %v", result.DeletedCount, imageID)
	return nil
}

func (m *MongoStore) GetKeyValues(ctx context.Context, imageID int64) ([]roiModel.KeyValueEntry, error) {
	doc := keyValuesDoc{}
	err := m.db.Collection(KeyValuesCollection).FindOne(ctx, bson.M{"_id": imageID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []roiModel.KeyValueEntry{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read key-value pairs for image %v", imageID)
	}
	if doc.KeyValues == nil {
		doc.KeyValues = []roiModel.KeyValueEntry{}
	}
	return doc.KeyValues, nil
}

func (m *MongoStore) PutKeyValues(ctx context.Context, imageID int64, values []roiModel.KeyValueEntry) error {
	if values == nil {
		values = []roiModel.KeyValueEntry{}
	}
	_, err := m.db.Collection(KeyValuesCollection).ReplaceOne(
		ctx,
		bson.M{"_id": imageID},
		keyValuesDoc{ImageID: imageID, KeyValues: values},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to write key-value pairs for image %v", imageID)
	}
	return nil
}

func (m *MongoStore) GetChannelSettings(ctx context.Context, imageID int64) ([]roiModel.ChannelSetting, error) {
	doc := channelsDoc{}
	err := m.db.Collection(ChannelsCollection).FindOne(ctx, bson.M{"_id": imageID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, channelsNotFound(imageID)
		}
		return nil, errors.Wrapf(err, "failed to read channel settings for image %v", imageID)
	}
	return doc.Channels, nil
}

func (m *MongoStore) PutChannelSettings(ctx context.Context, imageID int64, channels []roiModel.ChannelSetting) error {
	_, err := m.db.Collection(ChannelsCollection).ReplaceOne(
		ctx,
		bson.M{"_id": imageID},
		channelsDoc{ImageID: imageID, Channels: channels},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to write channel settings for image %v", imageID)
	}
	return nil
}

// InitCollections - pre-creates any of our collections that don't exist yet
func InitCollections(ctx context.Context, db *mongo.Database, iLog logger.ILogger) error {
	existingCollections, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return errors.Wrap(err, "failed to list mongo collections")
	}

	for _, collName := range []string{ShapesCollection, KeyValuesCollection, ChannelsCollection} {
		if !utils.ItemInSlice(collName, existingCollections) {
			iLog.Infof("Mongo collection %v doesn't exist, pre-creating it...", collName)
			err = db.CreateCollection(ctx, collName)
			if err != nil {
				return errors.Wrapf(err, "failed to create collection %v", collName)
			}
		}
	}
	return nil
}
