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

package config

import (
	"fmt"
	"testing"
)

func Test_InitializeConfigWithFile(t *testing.T) {
	cfg, err := NewConfigFromFile("./example_config.json")
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.ListenAddress != ":9090" {
		t.Errorf("cfg.ListenAddress got %q; want: %q", cfg.ListenAddress, ":9090")
	}
	if !cfg.UseMemoryStore {
		t.Errorf("cfg.UseMemoryStore not read")
	}
	// Defaulted
	if cfg.MongoDBName != "roi-exchange" || cfg.WSMessageBufferSize != 256 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func Test_OverrideConfigWithEnvVars(t *testing.T) {
	t.Setenv("ROIEXCHANGE_CONFIG_EnvironmentName", "ENV-SET-prod")
	t.Setenv("ROIEXCHANGE_CONFIG_CORSAllowedOrigins", "https://a.org,https://b.org")
	t.Setenv("ROIEXCHANGE_CONFIG_WSMaxMessageSize", "2048")
	t.Setenv("ROIEXCHANGE_CONFIG_UseMemoryStore", "false")

	cfg, err := NewConfigFromFile("./example_config.json")
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.EnvironmentName != "ENV-SET-prod" {
		t.Errorf("cfg.EnvironmentName got %q", cfg.EnvironmentName)
	}
	if fmt.Sprintf("%v", cfg.CORSAllowedOrigins) != "[https://a.org https://b.org]" {
		t.Errorf("cfg.CORSAllowedOrigins got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.WSMaxMessageSize != 2048 || cfg.UseMemoryStore {
		t.Errorf("numeric/bool overrides not applied: %+v", cfg)
	}
}

func Test_BadEnvVar(t *testing.T) {
	t.Setenv("ROIEXCHANGE_CONFIG_WSPongWaitMs", "soon")

	_, err := buildConfig([]byte("{}"))
	if err == nil || err.Error() != "could not read ROIEXCHANGE_CONFIG_WSPongWaitMs=soon as an integer" {
		t.Errorf("unexpected error: %v", err)
	}
}

func Example_buildConfigFailures() {
	_, err := NewConfigFromFile("./no-such-config.json")
	fmt.Println(err)

	_, err = buildConfig([]byte("{\"ListenAddress\": 3}"))
	fmt.Println(err != nil)

	// Output:
	// could not read config file at ./no-such-config.json
	// true
}
