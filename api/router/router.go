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

package apiRouter

import (
	"fmt"
	"net/http"
	"sort"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gorilla/mux"
	"github.com/pixlise/roi-exchange/core/logger"
)

type ApiObjectRouter struct {
	Router *mux.Router

	environmentName string
	log             logger.ILogger
	routes          map[string]bool
}

func NewAPIRouter(environmentName string, log logger.ILogger, router *mux.Router) ApiObjectRouter {
	return ApiObjectRouter{router, environmentName, log, map[string]bool{}}
}

func (r *ApiObjectRouter) AddHandler(path string, method string, handler http.Handler) {
	handlerToSave := handler

	// If needed, wrap in a sentry handler
	if r.environmentName != "unit-test" && r.environmentName != "local" {
		sentryHandler := sentryhttp.New(sentryhttp.Options{
			Repanic:         true,
			WaitForDelivery: true,
		})

		handlerToSave = sentryHandler.Handle(handler)
	}

	methodRoute := method + path
	if r.routes[methodRoute] {
		r.log.Errorf("Path handler already defined for: %v, method: %v", path, method)
		return
	}
	r.routes[methodRoute] = true

	r.Router.Handle(path, handlerToSave).Methods(method)
}

func (r *ApiObjectRouter) AddHandlerFunc(path string, method string, handleFunc http.HandlerFunc) {
	r.AddHandler(path, method, handleFunc)
}

// GetRoutes - "METHOD /path" for everything registered, sorted by path
func (r *ApiObjectRouter) GetRoutes() []string {
	type route struct{ method, path string }
	routes := []route{}
	for k := range r.routes {
		for c, ch := range k {
			if ch == '/' {
				routes = append(routes, route{k[0:c], k[c:]})
				break
			}
		}
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].path == routes[j].path {
			return routes[i].method < routes[j].method
		}
		return routes[i].path < routes[j].path
	})

	result := []string{}
	for _, rt := range routes {
		result = append(result, fmt.Sprintf("%-7v%v", rt.method, rt.path))
	}
	return result
}
