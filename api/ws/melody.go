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
	"time"

	"github.com/olahol/melody"
)

func MakeMelody(maxMessageSize int64, messageBufferSize int, writeWait time.Duration, pongWait time.Duration) *melody.Melody {
	m := melody.New()
	m.Config.MaxMessageSize = maxMessageSize
	m.Config.MessageBufferSize = messageBufferSize
	m.Config.WriteWait = writeWait
	m.Config.PongWait = pongWait
	// Has to be less than pong wait
	m.Config.PingPeriod = pongWait * 9 / 10
	return m
}

// RegisterCallbacks - routes melody's session events to this handler
func (ws *WSHandler) RegisterCallbacks() {
	ws.melody.HandleConnect(ws.HandleConnect)
	ws.melody.HandleDisconnect(ws.HandleDisconnect)
	ws.melody.HandleMessage(ws.HandleMessage)
	ws.melody.HandleMessageBinary(ws.HandleMessage)
}
