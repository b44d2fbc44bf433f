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
	"encoding/json"

	"github.com/olahol/melody"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/wsMessage"
)

func sendForSession(s *melody.Session, wsmsg *wsMessage.WSMessage, log logger.ILogger) {
	bytes, err := json.Marshal(wsmsg)
	if err != nil {
		s.CloseWithMsg(melody.FormatCloseMessage(1011, err.Error()))
		return
	}

	err = s.Write(bytes)
	if err != nil {
		log.Errorf("Failed to send response %v: %v", wsmsg.MsgId, err)
	}
}
