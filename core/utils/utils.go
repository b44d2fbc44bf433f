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
	"fmt"
	"sync/atomic"
)

const PrettyPrintIndentForJSON = "    "

// IDGenerator - generates object IDs
type IDGenerator interface {
	GenObjectID() string
}

// IDGen - random IDs, what we use in production
type IDGen struct {
}

func (i *IDGen) GenObjectID() string {
	return RandString(16)
}

// SequentialIDGen - predictable IDs, for tests
type SequentialIDGen struct {
	Prefix string
	next   uint64
}

func (i *SequentialIDGen) GenObjectID() string {
	n := atomic.AddUint64(&i.next, 1)
	return fmt.Sprintf("%v%v", i.Prefix, n)
}
