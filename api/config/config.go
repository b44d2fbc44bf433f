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

// Server configuration, read from a JSON file and then overridden by ROIEXCHANGE_CONFIG_<Field>
// environment variables
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

const EnvVarPrefix = "ROIEXCHANGE_CONFIG_"

type ServerConfig struct {
	ListenAddress   string
	EnvironmentName string
	LogLevel        string // DEBUG, INFO or ERROR

	AWSRegion string

	// Mongo connection. If MongoSecret is empty we connect to a local DB (see LOCAL_MONGO_URI).
	// If UseMemoryStore is set, no DB is used at all
	MongoSecret       string
	MongoDBName       string
	MongoCABundlePath string
	UseMemoryStore    bool

	// Client JWTs are HS256 signed with this
	JWTSecret string
	JWTIssuer string

	SentryEndpoint string

	CORSAllowedOrigins []string

	// Web Socket config
	WSWriteWaitMs       int64
	WSPongWaitMs        int64
	WSMaxMessageSize    int64
	WSMessageBufferSize int64
}

func NewConfigFromFile(configFilePath string) (ServerConfig, error) {
	var cfg ServerConfig

	customConfig, err := os.ReadFile(configFilePath)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file at %s", configFilePath)
	}
	return buildConfig(customConfig)
}

func buildConfig(configJson []byte) (ServerConfig, error) {
	var cfg ServerConfig

	err := json.Unmarshal(configJson, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse custom config: %v", err)
	}

	// Override Config with any values explicitly set in Env Vars (ROIEXCHANGE_CONFIG_*)
	// NOTE: For []string slices, pass in a comma-separated string to the corresponding env var
	// 			Ex: export ROIEXCHANGE_CONFIG_CORSAllowedOrigins="https://a.org,https://b.org"
	reflection := reflect.ValueOf(&cfg).Elem()
	for i := 0; i < reflection.NumField(); i++ {
		fieldName := reflection.Type().Field(i).Name
		field := reflection.Field(i)
		val, present := os.LookupEnv(EnvVarPrefix + fieldName)
		if !present {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(val)
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				field.Set(reflect.ValueOf(strings.Split(val, ",")))
			}
		case reflect.Int64:
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return cfg, fmt.Errorf("could not read %v%v=%v as an integer", EnvVarPrefix, fieldName, val)
			}
			field.SetInt(i)
		case reflect.Bool:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return cfg, fmt.Errorf("could not read %v%v=%v as a bool", EnvVarPrefix, fieldName, val)
			}
			field.SetBool(b)
		}
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *ServerConfig) {
	if len(cfg.ListenAddress) <= 0 {
		cfg.ListenAddress = ":8080"
	}
	if len(cfg.LogLevel) <= 0 {
		cfg.LogLevel = "INFO"
	}
	if len(cfg.MongoDBName) <= 0 {
		cfg.MongoDBName = "roi-exchange"
	}
	if len(cfg.MongoCABundlePath) <= 0 {
		cfg.MongoCABundlePath = "./rds-combined-ca-bundle.pem"
	}
	if len(cfg.CORSAllowedOrigins) <= 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.WSWriteWaitMs <= 0 {
		cfg.WSWriteWaitMs = 10000
	}
	if cfg.WSPongWaitMs <= 0 {
		cfg.WSPongWaitMs = 60000
	}
	// Shape lists for big images get large, this is well above melody's 512 byte default
	if cfg.WSMaxMessageSize <= 0 {
		cfg.WSMaxMessageSize = 10 * 1024 * 1024
	}
	if cfg.WSMessageBufferSize <= 0 {
		cfg.WSMessageBufferSize = 256
	}
}

// Init - reads the -customConfigPath command line argument and builds the config from that file
func Init() (ServerConfig, error) {
	configFilePath := flag.String("customConfigPath", "", "Path to the json file holding the ROI exchange server config")
	flag.Parse()

	if configFilePath == nil || *configFilePath == "" {
		return ServerConfig{}, errors.New("no configuration provided")
	}

	return NewConfigFromFile(*configFilePath)
}
