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

// Storage behind the reference image server: the shapes, key-value pairs and channel settings
// attached to each image.
package shapeStore

import (
	"context"
	"fmt"
	"sync"

	"github.com/pixlise/roi-exchange/core/errorwithstatus"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

type Store interface {
	GetShapes(ctx context.Context, imageID int64) ([]roiModel.RemoteShape, error)
	// PutShapes - appends to the shapes already on the image
	PutShapes(ctx context.Context, imageID int64, shapes []roiModel.RemoteShape) error
	DeleteShapes(ctx context.Context, imageID int64) error
	GetKeyValues(ctx context.Context, imageID int64) ([]roiModel.KeyValueEntry, error)
	// PutKeyValues - replaces the image's whole key-value set
	PutKeyValues(ctx context.Context, imageID int64, values []roiModel.KeyValueEntry) error
	// GetChannelSettings - not found if the image never had channel settings stored
	GetChannelSettings(ctx context.Context, imageID int64) ([]roiModel.ChannelSetting, error)
	PutChannelSettings(ctx context.Context, imageID int64, channels []roiModel.ChannelSetting) error
}

func channelsNotFound(imageID int64) error {
	return errorwithstatus.MakeNotFoundError(fmt.Sprintf("channel settings for image %v", imageID))
}

// MemoryStore - in-process store, used for local runs and tests
type MemoryStore struct {
	lock      sync.RWMutex
	shapes    map[int64][]roiModel.RemoteShape
	keyValues map[int64][]roiModel.KeyValueEntry
	channels  map[int64][]roiModel.ChannelSetting
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		shapes:    map[int64][]roiModel.RemoteShape{},
		keyValues: map[int64][]roiModel.KeyValueEntry{},
		channels:  map[int64][]roiModel.ChannelSetting{},
	}
}

func (m *MemoryStore) GetShapes(ctx context.Context, imageID int64) ([]roiModel.RemoteShape, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return append([]roiModel.RemoteShape{}, m.shapes[imageID]...), nil
}

func (m *MemoryStore) PutShapes(ctx context.Context, imageID int64, shapes []roiModel.RemoteShape) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.shapes[imageID] = append(m.shapes[imageID], shapes...)
	return nil
}

func (m *MemoryStore) DeleteShapes(ctx context.Context, imageID int64) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.shapes, imageID)
	return nil
}

func (m *MemoryStore) GetKeyValues(ctx context.Context, imageID int64) ([]roiModel.KeyValueEntry, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return append([]roiModel.KeyValueEntry{}, m.keyValues[imageID]...), nil
}

func (m *MemoryStore) PutKeyValues(ctx context.Context, imageID int64, values []roiModel.KeyValueEntry) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.keyValues[imageID] = append([]roiModel.KeyValueEntry{}, values...)
	return nil
}

func (m *MemoryStore) GetChannelSettings(ctx context.Context, imageID int64) ([]roiModel.ChannelSetting, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	channels, ok := m.channels[imageID]
	if !ok {
		return nil, channelsNotFound(imageID)
	}
	return append([]roiModel.ChannelSetting{}, channels...), nil
}

func (m *MemoryStore) PutChannelSettings(ctx context.Context, imageID int64, channels []roiModel.ChannelSetting) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.channels[imageID] = append([]roiModel.ChannelSetting{}, channels...)
	return nil
}
