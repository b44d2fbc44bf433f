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

	"github.com/pixlise/roi-exchange/core/logger"
	"go.mongodb.org/mongo-driver/event"
)

func Example_getDatabaseName() {
	fmt.Println(GetDatabaseName("roi-exchange", "prod"))
	fmt.Println(GetDatabaseName("roi-exchange", ""))

	// Output:
	// roi-exchange-prod
	// roi-exchange
}

func Example_parseConnectionInfo() {
	info, err := parseConnectionInfo("mongo-secret", `{"host": "db.local:27017", "username": "roi", "password": "pw", "port": "27017"}`)
	fmt.Printf("%v|%v|%v|%v\n", info.Host, info.Username, info.Port, err)

	_, err = parseConnectionInfo("mongo-secret", `{"username": "roi"}`)
	fmt.Println(err)

	_, err = parseConnectionInfo("mongo-secret", `{"username":`)
	fmt.Println(err != nil)

	// Output:
	// db.local:27017|roi|27017|<nil>
	// secret mongo-secret has no host
	// true
}

func Example_commandMonitor() {
	log := &logger.MemLogger{}
	mon := makeMongoCommandMonitor(log)

	mon.Started(context.Background(), &event.CommandStartedEvent{CommandName: "find", DatabaseName: "roi-exchange"})
	failed := &event.CommandFailedEvent{Failure: "timed out"}
	failed.CommandName = "insert"
	mon.Failed(context.Background(), failed)

	for _, line := range log.Lines() {
		fmt.Println(line)
	}

	// Output:
	// DEBUG: Mongo request: find on roi-exchange
	// ERROR: Mongo FAIL: insert: timed out
}
