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
	"fmt"
	"net/http/httptest"
	"strings"

	"github.com/pixlise/roi-exchange/api/shapeStore"
	"github.com/pixlise/roi-exchange/api/ws"
	"github.com/pixlise/roi-exchange/core/jwtparser"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/timestamper"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func makeTestRouter() *httptest.Server {
	validator, _ := jwtparser.NewHS256Validator("0123456789abcdef0123456789abcdef", "")
	wsHandler := ws.MakeWSHandler(ws.MakeMelody(1024, 16, 1e9, 1e10), shapeStore.NewMemoryStore(), validator, &timestamper.UnixTimeNowStamper{}, &logger.NullLogger{})
	router := MakeRouter("unit-test", wsHandler, &logger.NullLogger{})
	return httptest.NewServer(router.Router)
}

func Example_version() {
	srv := makeTestRouter()
	defer srv.Close()

	rec := httptest.NewRecorder()
	srv.Config.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/version", nil))
	fmt.Println(rec.Code, strings.TrimSpace(rec.Body.String()))

	rec = httptest.NewRecorder()
	srv.Config.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	fmt.Println(rec.Code, strings.Contains(rec.Body.String(), "<h1>ROI Exchange</h1><p>Version N/A - Local build</p>"))

	ApiVersion = "1.2.0"
	GitHash = "0123456789abcdef"
	fmt.Println(GetAPIVersion())
	ApiVersion = ""
	GitHash = ""

	// Output:
	// 200 {"components":[{"component":"API","version":"N/A - Local build"}]}
	// 200 true
	// 1.2.0-01234567
}

func Example_prometheusMiddleware() {
	srv := makeTestRouter()
	defer srv.Close()

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/ws-connect", "401"))

	rec := httptest.NewRecorder()
	srv.Config.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/ws-connect", nil))
	fmt.Println(rec.Code)
	fmt.Println(testutil.ToFloat64(httpRequests.WithLabelValues("/ws-connect", "401")) - before)

	rec = httptest.NewRecorder()
	srv.Config.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	fmt.Println(rec.Code, strings.Contains(rec.Body.String(), "roi_exchange_http_requests_total"))

	// Output:
	// 401
	// 1
	// 200 true
}
