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

// Websocket side of the reference image server. A client first calls /ws-connect with its JWT to
// get a short-lived connect token, then opens /ws?token=... Requests on the socket are
// WSMessages, answered with the same message id.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/olahol/melody"
	"github.com/pixlise/roi-exchange/api/shapeStore"
	"github.com/pixlise/roi-exchange/core/jwtparser"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/timestamper"
	"github.com/pixlise/roi-exchange/core/utils"
	"github.com/pixlise/roi-exchange/core/wsMessage"
)

// How long a connect token from /ws-connect can be used for
const ConnectTokenLifetimeSec = 10

type UserInfoReader interface {
	GetUserInfo(r *http.Request) (jwtparser.JWTUserInfo, error)
}

type connectToken struct {
	expiryUnixSec int64
	userInfo      jwtparser.JWTUserInfo
}

type WSHandler struct {
	connectTokens map[string]connectToken
	tokenLock     sync.Mutex

	melody    *melody.Melody
	store     shapeStore.Store
	jwtReader UserInfoReader
	timeStamp timestamper.ITimeStamper
	log       logger.ILogger
}

func MakeWSHandler(m *melody.Melody, store shapeStore.Store, jwtReader UserInfoReader, timeStamp timestamper.ITimeStamper, log logger.ILogger) *WSHandler {
	ws := WSHandler{
		connectTokens: map[string]connectToken{},
		melody:        m,
		store:         store,
		jwtReader:     jwtReader,
		timeStamp:     timeStamp,
		log:           log,
	}
	return &ws
}

// Must be called with tokenLock held
func (ws *WSHandler) clearOldTokens(nowSec int64) {
	for token, usr := range ws.connectTokens {
		if usr.expiryUnixSec < nowSec {
			delete(ws.connectTokens, token)
		}
	}
}

func (ws *WSHandler) HandleBeginWSConnection(w http.ResponseWriter, r *http.Request) {
	userInfo, err := ws.jwtReader.GetUserInfo(r)
	if err != nil {
		ws.log.Infof("Rejected ws-connect: %v", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	// Generate a token that is valid for a short time
	token := utils.RandString(32)
	nowSec := ws.timeStamp.GetTimeNowSec()

	ws.tokenLock.Lock()
	// Clear out old ones, now is a good a time as any!
	ws.clearOldTokens(nowSec)
	ws.connectTokens[token] = connectToken{nowSec + ConnectTokenLifetimeSec, userInfo}
	ws.tokenLock.Unlock()

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(wsMessage.BeginWSConnectionResponse{ConnToken: token})
	if err != nil {
		ws.log.Errorf("Failed to write ws-connect response: %v", err)
	}
}

func (ws *WSHandler) HandleSocketCreation(w http.ResponseWriter, r *http.Request) {
	err := ws.melody.HandleRequest(w, r)
	if err != nil {
		ws.log.Errorf("Failed to upgrade websocket: %v", err)
	}
}

// takeConnectToken - the user the token was issued to. Tokens are single use
func (ws *WSHandler) takeConnectToken(token string) (jwtparser.JWTUserInfo, string) {
	ws.tokenLock.Lock()
	defer ws.tokenLock.Unlock()

	conn, ok := ws.connectTokens[token]
	if !ok {
		return jwtparser.JWTUserInfo{}, "Invalid token"
	}

	delete(ws.connectTokens, token)

	if conn.expiryUnixSec < ws.timeStamp.GetTimeNowSec() {
		return jwtparser.JWTUserInfo{}, "Expired token"
	}
	return conn.userInfo, ""
}

func (ws *WSHandler) HandleConnect(s *melody.Session) {
	// We get passed the initial websocket upgrade request here. The token query param has to
	// be one we handed out from /ws-connect, otherwise we close the socket
	token, ok := s.Request.URL.Query()["token"]
	if !ok {
		s.CloseWithMsg(melody.FormatCloseMessage(4001, "Missing token"))
		return
	}
	if len(token) != 1 {
		s.CloseWithMsg(melody.FormatCloseMessage(4001, "Multiple tokens provided"))
		return
	}

	connectingUser, failure := ws.takeConnectToken(token[0])
	if len(failure) > 0 {
		s.CloseWithMsg(melody.FormatCloseMessage(4001, failure))
		return
	}

	// Store the connection info!
	s.Set("user", connectingUser)

	sessId := utils.RandString(32)
	s.Set("id", sessId)

	ws.log.Infof("Connect user: %v, session: %v", connectingUser.UserID, sessId)
}

func (ws *WSHandler) HandleDisconnect(s *melody.Session) {
	id, ok := s.Get("id")
	if !ok {
		// Closed before it finished connecting
		return
	}

	connectingUser, err := getSessionUser(s)
	if err != nil {
		ws.log.Errorf("Disconnect: %v", err)
		return
	}

	ws.log.Infof("Disconnect user: %v, session: %v", connectingUser.UserID, id)
}

func (ws *WSHandler) HandleMessage(s *melody.Session, msg []byte) {
	wsmsg := wsMessage.WSMessage{}
	err := json.Unmarshal(msg, &wsmsg)
	if err != nil {
		ws.log.Errorf("HandleMessage: Error while decoding msg: %v", err)
		sendForSession(s, &wsMessage.WSMessage{Status: wsMessage.StatusBadRequest, ErrorText: "failed to decode message"}, ws.log)
		return
	}

	user, err := getSessionUser(s)
	if err != nil {
		sendForSession(s, &wsMessage.WSMessage{MsgId: wsmsg.MsgId, Request: wsmsg.Request, Status: wsMessage.StatusNoPermission, ErrorText: err.Error()}, ws.log)
		return
	}

	resp, err := ws.dispatchWSMessage(s.Request.Context(), &wsmsg)
	if err != nil {
		resp = &wsMessage.WSMessage{Status: makeRespStatus(err), ErrorText: err.Error()}
		if resp.Status == wsMessage.StatusServerError {
			ws.log.Errorf("%v for image %v by user %v failed: %v", wsmsg.Request, wsmsg.ImageID, user.UserID, err)
			sentry.CaptureException(err)
		}
	} else {
		resp.Status = wsMessage.StatusOK
	}

	// Set incoming message ID on the outgoing one
	resp.MsgId = wsmsg.MsgId
	resp.Request = wsmsg.Request
	resp.ImageID = wsmsg.ImageID

	sendForSession(s, resp, ws.log)
}
