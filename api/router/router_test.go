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
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/pixlise/roi-exchange/core/logger"
)

func Example_addHandler() {
	log := &logger.MemLogger{}
	r := NewAPIRouter("unit-test", log, mux.NewRouter())

	hello := func(w http.ResponseWriter, req *http.Request) { fmt.Fprint(w, "hello") }
	r.AddHandlerFunc("/version", "GET", hello)
	r.AddHandlerFunc("/ws", "GET", hello)
	r.AddHandlerFunc("/version", "POST", hello)
	r.AddHandlerFunc("/version", "GET", hello)

	for _, route := range r.GetRoutes() {
		fmt.Println(route)
	}
	fmt.Println(log.Lines())

	rec := httptest.NewRecorder()
	r.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/version", nil))
	fmt.Println(rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	r.Router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/version", nil))
	fmt.Println(rec.Code)

	// Output:
	// GET    /version
	// POST   /version
	// GET    /ws
	// [ERROR: Path handler already defined for: /version, method: GET]
	// 200 hello
	// 405
}
