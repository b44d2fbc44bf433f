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

package gateway

import (
	"context"
	"sync"

	"github.com/pixlise/roi-exchange/core/roiModel"
)

// MockGateway - in-memory Gateway for unit tests. Fail holds an error to return per operation name
// (Op... constants), Rejected makes WriteShapes report that nothing was stored
type MockGateway struct {
	mutex sync.Mutex

	Shapes    map[int64][]roiModel.RemoteShape
	KeyValues map[int64]map[string]string
	Channels  map[int64][]roiModel.ChannelSetting

	Fail     map[string]error
	Rejected bool

	// Operations called, in order
	Calls []string
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		Shapes:    map[int64][]roiModel.RemoteShape{},
		KeyValues: map[int64]map[string]string{},
		Channels:  map[int64][]roiModel.ChannelSetting{},
		Fail:      map[string]error{},
	}
}

func (m *MockGateway) call(op string) error {
	m.Calls = append(m.Calls, op)
	return m.Fail[op]
}

func (m *MockGateway) FetchShapes(ctx context.Context, imageID int64) ([]roiModel.RemoteShape, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.call(OpFetchShapes); err != nil {
		return nil, err
	}
	return append([]roiModel.RemoteShape{}, m.Shapes[imageID]...), nil
}

func (m *MockGateway) FetchKeyValues(ctx context.Context, imageID int64) ([]roiModel.KeyValueEntry, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.call(OpFetchKeyValues); err != nil {
		return nil, err
	}

	result := []roiModel.KeyValueEntry{}
	for k, v := range m.KeyValues[imageID] {
		result = append(result, roiModel.KeyValueEntry{Key: k, Value: v})
	}
	return result, nil
}

func (m *MockGateway) WriteShapes(ctx context.Context, imageID int64, shapes []roiModel.RemoteShape) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.call(OpWriteShapes); err != nil {
		return false, err
	}
	if m.Rejected {
		return false, nil
	}
	m.Shapes[imageID] = append(m.Shapes[imageID], shapes...)
	return true, nil
}

func (m *MockGateway) DeleteShapes(ctx context.Context, imageID int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.call(OpDeleteShapes); err != nil {
		return err
	}
	delete(m.Shapes, imageID)
	return nil
}

func (m *MockGateway) WriteKeyValues(ctx context.Context, imageID int64, values map[string]string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.call(OpWriteKeyValues); err != nil {
		return err
	}

	saved := map[string]string{}
	for k, v := range values {
		saved[k] = v
	}
	m.KeyValues[imageID] = saved
	return nil
}

func (m *MockGateway) FetchChannelSettings(ctx context.Context, imageID int64) ([]roiModel.ChannelSetting, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.call(OpFetchChannelSettings); err != nil {
		return nil, err
	}
	return append([]roiModel.ChannelSetting{}, m.Channels[imageID]...), nil
}
