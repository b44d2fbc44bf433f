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

package errorwithstatus

import (
	"fmt"

	"github.com/pkg/errors"
)

func Example_getStatus() {
	err := MakeNotFoundError("channel settings for image 12")
	fmt.Println(err, GetStatus(err))

	wrapped := errors.Wrap(MakeBadRequestError(errors.New("no image id")), "get-shapes")
	fmt.Println(wrapped, GetStatus(wrapped))

	fmt.Println(GetStatus(errors.New("disk on fire")))
	fmt.Println(GetStatus(MakeStatusError(418, errors.New("teapot"))))

	// Output:
	// channel settings for image 12 not found 404
	// get-shapes: no image id 400
	// 500
	// 418
}
