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

package ws

import (
	"context"
	"fmt"

	"github.com/pixlise/roi-exchange/core/errorwithstatus"
	"github.com/pixlise/roi-exchange/core/wsMessage"
)

func (ws *WSHandler) dispatchWSMessage(ctx context.Context, msg *wsMessage.WSMessage) (*wsMessage.WSMessage, error) {
	if msg.ImageID <= 0 {
		return nil, errorwithstatus.MakeBadRequestError(fmt.Errorf("invalid image id: %v", msg.ImageID))
	}

	resp := &wsMessage.WSMessage{}
	var err error

	switch msg.Request {
	case wsMessage.GetShapes:
		resp.Shapes, err = ws.store.GetShapes(ctx, msg.ImageID)
	case wsMessage.PutShapes:
		err = ws.store.PutShapes(ctx, msg.ImageID, msg.Shapes)
		resp.Stored = err == nil
	case wsMessage.DeleteShapes:
		err = ws.store.DeleteShapes(ctx, msg.ImageID)
	case wsMessage.GetKeyValues:
		resp.KeyValues, err = ws.store.GetKeyValues(ctx, msg.ImageID)
	case wsMessage.PutKeyValues:
		err = ws.store.PutKeyValues(ctx, msg.ImageID, msg.KeyValues)
	case wsMessage.GetChannelSettings:
		resp.Channels, err = ws.store.GetChannelSettings(ctx, msg.ImageID)
	case wsMessage.PutChannelSettings:
		err = ws.store.PutChannelSettings(ctx, msg.ImageID, msg.Channels)
	default:
		return nil, errorwithstatus.MakeBadRequestError(fmt.Errorf("unknown request: \"%v\"", msg.Request))
	}

	if err != nil {
		return nil, err
	}
	return resp, nil
}
