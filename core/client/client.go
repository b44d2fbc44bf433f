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

// Client side of the image server's websocket API, implementing gateway.Gateway so the sync
// layer can talk to a real server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pixlise/roi-exchange/core/logger"
)

type ClientConfig struct {
	Host string
	JWT  string

	// How long to wait for each response. Defaults to defaultRequestTimeout
	RequestTimeoutSec int
}

const configEnvVar = "ROIEXCHANGE_CLIENT_CONFIG"

const defaultRequestTimeout = 30 * time.Second

// LoadConfig - reads the config from configPath, or if that's empty, from the JSON in the
// ROIEXCHANGE_CLIENT_CONFIG environment variable
func LoadConfig(configPath string) (ClientConfig, error) {
	cfg := ClientConfig{}

	if len(configPath) > 0 {
		cfgBytes, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %v. Error: %v", configPath, err)
		}

		err = json.Unmarshal(cfgBytes, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse client config: %v", err)
		}
	} else {
		cfgStr := os.Getenv(configEnvVar)

		if len(cfgStr) <= 0 {
			return cfg, fmt.Errorf("no config path and no environment variable (%v) defined. Cannot connect", configEnvVar)
		}

		err := json.Unmarshal([]byte(cfgStr), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse client config from environment variable: %v. Error: %v", configEnvVar, err)
		}
	}

	if len(cfg.Host) <= 0 || len(cfg.JWT) <= 0 {
		return cfg, fmt.Errorf("client config must specify Host and JWT")
	}
	return cfg, nil
}

// Connect - opens a socket to the server in cfg
func Connect(ctx context.Context, cfg ClientConfig, log logger.ILogger) (*RemoteGateway, error) {
	socket := &SocketConn{}
	err := socket.Connect(ctx, ConnectInfo{Host: cfg.Host, JWT: cfg.JWT}, log)
	if err != nil {
		return nil, err
	}

	timeout := defaultRequestTimeout
	if cfg.RequestTimeoutSec > 0 {
		timeout = time.Duration(cfg.RequestTimeoutSec) * time.Second
	}

	return &RemoteGateway{socket: socket, timeout: timeout}, nil
}
