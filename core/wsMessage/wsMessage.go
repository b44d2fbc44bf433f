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

// The JSON envelope exchanged over the websocket between the gateway client and the image
// server. Each request carries a message id which the server copies onto its response.
package wsMessage

import (
	"fmt"

	"github.com/pixlise/roi-exchange/core/roiModel"
)

type Request string

const (
	GetShapes          Request = "get-shapes"
	PutShapes          Request = "put-shapes"
	DeleteShapes       Request = "delete-shapes"
	GetKeyValues       Request = "get-key-values"
	PutKeyValues       Request = "put-key-values"
	GetChannelSettings Request = "get-channel-settings"
	PutChannelSettings Request = "put-channel-settings"
)

type ResponseStatus int

const (
	StatusUndefined ResponseStatus = iota
	StatusOK
	StatusNotFound
	StatusBadRequest
	StatusNoPermission
	StatusServerError
)

var statusNames = map[ResponseStatus]string{
	StatusUndefined:    "undefined",
	StatusOK:           "ok",
	StatusNotFound:     "not found",
	StatusBadRequest:   "bad request",
	StatusNoPermission: "no permission",
	StatusServerError:  "server error",
}

func (s ResponseStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ResponseStatus(%d)", int(s))
}

type WSMessage struct {
	MsgId   uint32  `json:"msgId"`
	Request Request `json:"request"`
	ImageID int64   `json:"imageId"`

	Shapes    []roiModel.RemoteShape    `json:"shapes,omitempty"`
	KeyValues []roiModel.KeyValueEntry  `json:"keyValues,omitempty"`
	Channels  []roiModel.ChannelSetting `json:"channels,omitempty"`

	// Response only
	Stored    bool           `json:"stored,omitempty"`
	Status    ResponseStatus `json:"status,omitempty"`
	ErrorText string         `json:"errorText,omitempty"`
}

// BeginWSConnectionResponse - body returned by /ws-connect. The token is passed as the token query
// param when opening /ws
type BeginWSConnectionResponse struct {
	ConnToken string `json:"connToken"`
}

// ResponseError - a response that came back with a status other than OK
type ResponseError struct {
	Request Request
	Status  ResponseStatus
	Text    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%v failed with status %v: %v", e.Request, e.Status, e.Text)
}

// CheckResponse - nil if resp is a successful response
func CheckResponse(resp *WSMessage) error {
	if resp.Status == StatusOK {
		return nil
	}
	return &ResponseError{Request: resp.Request, Status: resp.Status, Text: resp.ErrorText}
}
