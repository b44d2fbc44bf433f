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

package mongoDBConnection

import (
	"context"
	"fmt"
	"os"

	"github.com/pixlise/roi-exchange/core/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const LocalMongoURIEnvVar = "LOCAL_MONGO_URI"

// LocalMongoURI - the URI in LOCAL_MONGO_URI, or the default local one. The bool says whether the
// env var was set
func LocalMongoURI() (string, bool) {
	mongoUri, set := os.LookupEnv(LocalMongoURIEnvVar)
	if !set {
		mongoUri = "mongodb://localhost"
	}
	return mongoUri, set
}

func connectToLocalMongoDB(log logger.ILogger) (*mongo.Client, error) {
	mongoUri, _ := LocalMongoURI()
	log.Infof("Connecting to local mongo db: %v", mongoUri)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoUri).SetMonitor(makeMongoCommandMonitor(log)).SetDirect(true))
	if err != nil {
		return nil, fmt.Errorf("Failed to create new local mongo DB connection: %v", err)
	}

	err = ping(client)
	if err != nil {
		return nil, err
	}

	log.Infof("Successfully connected to local mongo db!")
	return client, nil
}
