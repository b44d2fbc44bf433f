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
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pixlise/roi-exchange/core/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const connectTimeout = 10 * time.Second

// Connect - to a local DB with no auth if mongoSecret is empty (see LOCAL_MONGO_URI), otherwise
// to the remote one whose connection details are stored in AWS secrets manager under mongoSecret
func Connect(
	sess *session.Session, // Can be nil for local connection
	mongoSecret string,
	caBundlePath string, // Only used for remote connections
	iLog logger.ILogger,
) (*mongo.Client, error) {
	if len(mongoSecret) <= 0 {
		return connectToLocalMongoDB(iLog)
	}

	if sess == nil {
		return nil, fmt.Errorf("no AWS session to read mongo secret \"%v\" with", mongoSecret)
	}

	mongoConnectionInfo, err := getMongoConnectionInfoFromSecretCache(sess, mongoSecret)
	if err != nil {
		return nil, fmt.Errorf("Failed to read mongo secret \"%v\" info from secrets cache: %v", mongoSecret, err)
	}

	return connectToRemoteMongoDB(
		mongoConnectionInfo.Host,
		mongoConnectionInfo.Username,
		mongoConnectionInfo.Password,
		caBundlePath,
		iLog,
	)
}

func GetDatabaseName(dbName string, envName string) string {
	if len(envName) <= 0 {
		return dbName
	}
	return dbName + "-" + envName
}

func ping(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var result bson.M
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Decode(&result)
}
