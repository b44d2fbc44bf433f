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

package client

import (
	"context"
	"time"

	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/utils"
	"github.com/pixlise/roi-exchange/core/wsMessage"
)

// RemoteGateway - gateway.Gateway over a websocket to the image server
type RemoteGateway struct {
	socket  *SocketConn
	timeout time.Duration
}

func (g *RemoteGateway) UserId() string {
	return g.socket.UserId
}

func (g *RemoteGateway) Close() error {
	return g.socket.Close()
}

func (g *RemoteGateway) request(ctx context.Context, msg *wsMessage.WSMessage) (*wsMessage.WSMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.socket.Request(ctx, msg)
	if err != nil {
		return nil, err
	}
	return resp, wsMessage.CheckResponse(resp)
}

func (g *RemoteGateway) FetchShapes(ctx context.Context, imageID int64) ([]roiModel.RemoteShape, error) {
	resp, err := g.request(ctx, &wsMessage.WSMessage{Request: wsMessage.GetShapes, ImageID: imageID})
	if err != nil {
		return nil, err
	}
	return resp.Shapes, nil
}

func (g *RemoteGateway) FetchKeyValues(ctx context.Context, imageID int64) ([]roiModel.KeyValueEntry, error) {
	resp, err := g.request(ctx, &wsMessage.WSMessage{Request: wsMessage.GetKeyValues, ImageID: imageID})
	if err != nil {
		return nil, err
	}
	return resp.KeyValues, nil
}

func (g *RemoteGateway) WriteShapes(ctx context.Context, imageID int64, shapes []roiModel.RemoteShape) (bool, error) {
	resp, err := g.request(ctx, &wsMessage.WSMessage{Request: wsMessage.PutShapes, ImageID: imageID, Shapes: shapes})
	if err != nil {
		return false, err
	}
	return resp.Stored, nil
}

func (g *RemoteGateway) DeleteShapes(ctx context.Context, imageID int64) error {
	_, err := g.request(ctx, &wsMessage.WSMessage{Request: wsMessage.DeleteShapes, ImageID: imageID})
	return err
}

// WriteKeyValues - replaces the image's key-value pairs with values, sent in key order
func (g *RemoteGateway) WriteKeyValues(ctx context.Context, imageID int64, values map[string]string) error {
	entries := make([]roiModel.KeyValueEntry, 0, len(values))
	for _, k := range utils.GetSortedMapKeys(values) {
		entries = append(entries, roiModel.KeyValueEntry{Key: k, Value: values[k]})
	}

	_, err := g.request(ctx, &wsMessage.WSMessage{Request: wsMessage.PutKeyValues, ImageID: imageID, KeyValues: entries})
	return err
}

func (g *RemoteGateway) FetchChannelSettings(ctx context.Context, imageID int64) ([]roiModel.ChannelSetting, error) {
	resp, err := g.request(ctx, &wsMessage.WSMessage{Request: wsMessage.GetChannelSettings, ImageID: imageID})
	if err != nil {
		return nil, err
	}
	return resp.Channels, nil
}

// WriteChannelSettings - stores an image's channel settings on the server. Not part of the
// exchange itself, used when setting images up
func (g *RemoteGateway) WriteChannelSettings(ctx context.Context, imageID int64, channels []roiModel.ChannelSetting) error {
	_, err := g.request(ctx, &wsMessage.WSMessage{Request: wsMessage.PutChannelSettings, ImageID: imageID, Channels: channels})
	return err
}
