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

package gateway

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

func Example_wrapRemote() {
	fmt.Println(WrapRemote(nil, 12, OpFetchShapes))

	err := WrapRemote(io.ErrUnexpectedEOF, 12, OpFetchShapes)
	fmt.Println(err)
	fmt.Println(IsRemoteAccessError(err), IsRemoteAccessError(io.ErrUnexpectedEOF))
	fmt.Println(errors.Is(err, io.ErrUnexpectedEOF), errors.Cause(err) == io.ErrUnexpectedEOF)

	// Still found when wrapped further up
	fmt.Println(IsRemoteAccessError(errors.Wrap(err, "import failed")))

	// Output:
	// <nil>
	// failed to fetch shapes for image 12: unexpected EOF
	// true false
	// true true
	// true
}

func Example_mockGateway() {
	g := NewMockGateway()
	g.Fail[OpWriteKeyValues] = errors.New("read only")

	ctx := context.Background()
	fmt.Println(g.WriteKeyValues(ctx, 3, map[string]string{"a": "b"}))
	ok, err := g.WriteShapes(ctx, 3, nil)
	fmt.Println(ok, err)

	g.Rejected = true
	ok, err = g.WriteShapes(ctx, 3, nil)
	fmt.Println(ok, err)
	fmt.Println(g.Calls)

	// Output:
	// read only
	// true <nil>
	// false <nil>
	// [write key-value pairs write shapes write shapes]
}
