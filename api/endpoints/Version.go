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

package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	apiRouter "github.com/pixlise/roi-exchange/api/router"
)

// Set at build time via -ldflags
var ApiVersion string
var GitHash string

type ComponentVersion struct {
	Component string `json:"component"`
	Version   string `json:"version"`
}

type ComponentVersionsGetResponse struct {
	Components []ComponentVersion `json:"components"`
}

func GetAPIVersion() string {
	if len(ApiVersion) <= 0 {
		return "N/A - Local build"
	}

	ver := ApiVersion
	if len(GitHash) > 8 {
		ver += "-" + GitHash[0:8]
	}

	return ver
}

func registerVersionHandler(router *apiRouter.ApiObjectRouter) {
	router.AddHandlerFunc("/", "GET", rootRequest)
	router.AddHandlerFunc("/version", "GET", componentVersionsGet)
}

func rootRequest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, "<!DOCTYPE html><html><head><title>ROI Exchange</title></head><body><h1>ROI Exchange</h1><p>Version %v</p></body></html>", GetAPIVersion())
}

func componentVersionsGet(w http.ResponseWriter, r *http.Request) {
	result := ComponentVersionsGetResponse{
		Components: []ComponentVersion{{Component: "API", Version: GetAPIVersion()}},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
