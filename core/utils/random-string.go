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

package utils

import (
	crand "crypto/rand"
	"math/big"
)

// Random string generation
const RandomStringChars = "abcdefghijklmnopqrstuvwxyz1234567890"

// RandString - random string of lower case letters and digits. Uses crypto/rand because these
// end up as connection tokens
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = RandomStringChars[randInt(len(RandomStringChars))]
	}
	return string(b)
}

func randInt(max int) int {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(n.Int64())
}
