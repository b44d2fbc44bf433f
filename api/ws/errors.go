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
	"fmt"
	"net/http"

	"github.com/olahol/melody"
	"github.com/pixlise/roi-exchange/core/errorwithstatus"
	"github.com/pixlise/roi-exchange/core/jwtparser"
	"github.com/pixlise/roi-exchange/core/wsMessage"
)

func makeRespStatus(err error) wsMessage.ResponseStatus {
	switch errorwithstatus.GetStatus(err) {
	case http.StatusNotFound:
		return wsMessage.StatusNotFound
	case http.StatusBadRequest:
		return wsMessage.StatusBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return wsMessage.StatusNoPermission
	default:
		return wsMessage.StatusServerError
	}
}

func getSessionUser(s *melody.Session) (jwtparser.JWTUserInfo, error) {
	userValue, ok := s.Get("user")
	if !ok {
		return jwtparser.JWTUserInfo{}, fmt.Errorf("session has no user")
	}

	user, ok := userValue.(jwtparser.JWTUserInfo)
	if !ok {
		return jwtparser.JWTUserInfo{}, fmt.Errorf("session user has invalid type")
	}
	return user, nil
}
