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

// HTTP surface of the reference image server: version info, metrics and the two websocket
// connection endpoints
package endpoints

import (
	"github.com/gorilla/mux"
	apiRouter "github.com/pixlise/roi-exchange/api/router"
	"github.com/pixlise/roi-exchange/api/ws"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func MakeRouter(environmentName string, wsHandler *ws.WSHandler, log logger.ILogger) apiRouter.ApiObjectRouter {
	router := mux.NewRouter()
	objRouter := apiRouter.NewAPIRouter(environmentName, log, router)

	registerVersionHandler(&objRouter)

	objRouter.AddHandlerFunc("/ws-connect", "GET", wsHandler.HandleBeginWSConnection)
	objRouter.AddHandlerFunc("/ws", "GET", wsHandler.HandleSocketCreation)
	objRouter.AddHandler("/metrics", "GET", promhttp.Handler())

	router.Use(PrometheusMiddleware)
	return objRouter
}
