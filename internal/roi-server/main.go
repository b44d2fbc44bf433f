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

package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/handlers"
	"github.com/pixlise/roi-exchange/api/config"
	"github.com/pixlise/roi-exchange/api/endpoints"
	"github.com/pixlise/roi-exchange/api/shapeStore"
	"github.com/pixlise/roi-exchange/api/ws"
	"github.com/pixlise/roi-exchange/core/awsutil"
	"github.com/pixlise/roi-exchange/core/jwtparser"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/mongoDBConnection"
	"github.com/pixlise/roi-exchange/core/timestamper"
	"github.com/pixlise/roi-exchange/core/utils"
)

func main() {
	log.Printf("ROI exchange server version: \"%v\"", endpoints.GetAPIVersion())

	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("Something went wrong with server config. Error: %v\n", err)
	}

	// Show the config, minus the secret
	shown := cfg
	if len(shown.JWTSecret) > 0 {
		shown.JWTSecret = "***"
	}
	cfgJSON, err := json.MarshalIndent(shown, "", utils.PrettyPrintIndentForJSON)
	if err != nil {
		log.Fatalf("Error trying to display config\n")
	}
	log.Println(string(cfgJSON))

	logLevel, err := logger.GetLogLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	iLog := logger.NewStdOutLogger(logLevel)

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryEndpoint,
		Environment: cfg.EnvironmentName,
		Release:     endpoints.GetAPIVersion(),
	}); err != nil {
		iLog.Errorf("Sentry initialization failed: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	store, err := makeStore(cfg, iLog)
	if err != nil {
		log.Fatalf("Failed to create shape store: %v", err)
	}

	jwtValidator, err := jwtparser.NewHS256Validator(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		log.Fatalf("Failed to init JWT validator. Error: %v", err)
	}

	m := ws.MakeMelody(
		cfg.WSMaxMessageSize,
		int(cfg.WSMessageBufferSize),
		time.Duration(cfg.WSWriteWaitMs)*time.Millisecond,
		time.Duration(cfg.WSPongWaitMs)*time.Millisecond,
	)
	wsHandler := ws.MakeWSHandler(m, store, jwtValidator, &timestamper.UnixTimeNowStamper{}, iLog)
	wsHandler.RegisterCallbacks()

	router := endpoints.MakeRouter(cfg.EnvironmentName, wsHandler, iLog)
	iLog.Infof("Routes:\n%v", strings.Join(router.GetRoutes(), "\n"))

	iLog.Infof("ROI exchange server \"%v\" listening on %v", endpoints.GetAPIVersion(), cfg.ListenAddress)

	log.Fatal(
		http.ListenAndServe(cfg.ListenAddress,
			handlers.CORS(
				handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}),
				handlers.AllowedMethods([]string{"GET", "HEAD", "OPTIONS"}),
				handlers.AllowedOrigins(cfg.CORSAllowedOrigins))(router.Router)))
}

func makeStore(cfg config.ServerConfig, iLog logger.ILogger) (shapeStore.Store, error) {
	if cfg.UseMemoryStore {
		iLog.Infof("Using in-memory shape store, nothing will be persisted")
		return shapeStore.NewMemoryStore(), nil
	}

	sess, err := awsutil.GetSessionWithRegion(cfg.AWSRegion)
	if err != nil {
		return nil, err
	}

	client, err := mongoDBConnection.Connect(sess, cfg.MongoSecret, cfg.MongoCABundlePath, iLog)
	if err != nil {
		return nil, err
	}

	dbName := mongoDBConnection.GetDatabaseName(cfg.MongoDBName, cfg.EnvironmentName)
	iLog.Infof("Using mongo database: %v", dbName)

	db := client.Database(dbName)
	err = shapeStore.InitCollections(context.Background(), db, iLog)
	if err != nil {
		return nil, err
	}
	return shapeStore.NewMongoStore(db, iLog), nil
}
