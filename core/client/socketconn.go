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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pixlise/roi-exchange/core/jwtparser"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/wsMessage"
	"github.com/pkg/errors"
)

type ConnectInfo struct {
	Host string // eg http://localhost:8080 or https://roi.example.org
	JWT  string
}

// SocketConn - a websocket to the image server. Requests can be made from several goroutines,
// responses are matched up with their request by message id
type SocketConn struct {
	JWT    string
	UserId string

	ws        *websocket.Conn
	writeLock sync.Mutex

	pendingLock sync.Mutex
	pending     map[uint32]chan *wsMessage.WSMessage
	readErr     error

	reqCount uint32
	done     chan struct{}
	log      logger.ILogger
}

// Returns the http and websocket URL for a path on host. Not using https/wss for local...
func hostURLs(host string, path string) (url.URL, url.URL) {
	httpProtocol := "http"
	wsProtocol := "ws"
	hostUrl := host

	if strings.HasPrefix(hostUrl, "https://") {
		httpProtocol = "https"
		wsProtocol = "wss"
		hostUrl = strings.TrimPrefix(hostUrl, "https://")
	} else {
		hostUrl = strings.TrimPrefix(hostUrl, "http://")
	}

	hostUrl = strings.TrimSuffix(hostUrl, "/")

	return url.URL{Scheme: httpProtocol, Host: hostUrl, Path: path}, url.URL{Scheme: wsProtocol, Host: hostUrl, Path: path}
}

func (s *SocketConn) Connect(ctx context.Context, connectParams ConnectInfo, log logger.ILogger) error {
	s.log = log

	token, err := s.getWSConnectToken(ctx, connectParams)
	if err != nil {
		return err
	}

	_, wsUrl := hostURLs(connectParams.Host, "/ws")
	wsUrl.RawQuery = url.Values{"token": []string{token}}.Encode()

	ws, resp, err := websocket.DefaultDialer.DialContext(ctx, wsUrl.String(), nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("WS connection to %v failed with status %v: %v", connectParams.Host, resp.StatusCode, err)
		}
		return fmt.Errorf("WS connection to %v failed: %v", connectParams.Host, err)
	}

	s.ws = ws
	s.pending = map[uint32]chan *wsMessage.WSMessage{}
	s.done = make(chan struct{})

	go s.readLoop()

	s.log.Debugf("Connected to %v as user %v", connectParams.Host, s.UserId)
	return nil
}

// Message receiving thread. Runs until the socket fails or is closed, then fails anything still
// waiting for a response
func (s *SocketConn) readLoop() {
	for {
		_, msgBytes, err := s.ws.ReadMessage()
		if err != nil {
			s.pendingLock.Lock()
			s.readErr = err
			s.pending = map[uint32]chan *wsMessage.WSMessage{}
			s.pendingLock.Unlock()
			close(s.done)
			return
		}

		resp := &wsMessage.WSMessage{}
		err = json.Unmarshal(msgBytes, resp)
		if err != nil {
			s.log.Errorf("Error decoding msg from socket: %v", err)
			continue
		}

		s.pendingLock.Lock()
		ch, ok := s.pending[resp.MsgId]
		delete(s.pending, resp.MsgId)
		s.pendingLock.Unlock()

		if !ok {
			s.log.Errorf("Received response %v (%v) that nothing is waiting for", resp.MsgId, resp.Request)
			continue
		}
		ch <- resp
	}
}

func (s *SocketConn) getWSConnectToken(ctx context.Context, connectParams ConnectInfo) (string, error) {
	s.JWT = connectParams.JWT

	// Parse the JWT to get our user ID
	userId, err := jwtparser.ReadUnverifiedSubject(s.JWT)
	if err != nil {
		return "", errors.Wrap(err, "failed to read user from JWT")
	}
	s.UserId = userId

	wsConnectUrl, _ := hostURLs(connectParams.Host, "/ws-connect")

	req, err := http.NewRequestWithContext(ctx, "GET", wsConnectUrl.String(), nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.JWT)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ws-connect returned status %v: %v", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	respBody := wsMessage.BeginWSConnectionResponse{}
	err = json.Unmarshal(b, &respBody)
	if err != nil {
		return "", err
	}

	return respBody.ConnToken, nil
}

// Request - sends msg (setting its message id) and waits for the matching response
func (s *SocketConn) Request(ctx context.Context, msg *wsMessage.WSMessage) (*wsMessage.WSMessage, error) {
	msg.MsgId = atomic.AddUint32(&s.reqCount, 1)

	bytes, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	ch := make(chan *wsMessage.WSMessage, 1)

	s.pendingLock.Lock()
	if s.readErr != nil {
		s.pendingLock.Unlock()
		return nil, errors.Wrap(s.readErr, "connection closed")
	}
	s.pending[msg.MsgId] = ch
	s.pendingLock.Unlock()

	s.writeLock.Lock()
	err = s.ws.WriteMessage(websocket.TextMessage, bytes)
	s.writeLock.Unlock()

	if err != nil {
		s.forget(msg.MsgId)
		return nil, errors.Wrapf(err, "failed to send %v", msg.Request)
	}

	select {
	case resp := <-ch:
		return resp, nil
	case <-ctx.Done():
		s.forget(msg.MsgId)
		return nil, errors.Wrapf(ctx.Err(), "no response to %v", msg.Request)
	case <-s.done:
		return nil, errors.Wrapf(s.readErr, "connection closed while waiting for %v", msg.Request)
	}
}

func (s *SocketConn) forget(msgId uint32) {
	s.pendingLock.Lock()
	delete(s.pending, msgId)
	s.pendingLock.Unlock()
}

// Close - cleanly closes the connection by sending a close message and waiting for the server to
// close its end
func (s *SocketConn) Close() error {
	s.writeLock.Lock()
	err := s.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	s.writeLock.Unlock()

	if err == nil {
		select {
		case <-s.done:
		case <-time.After(time.Second):
		}
	}
	return s.ws.Close()
}
