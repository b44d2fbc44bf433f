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

// Describes the remote image server as the sync code sees it. Implemented over the websocket API
// by core/client, and by fakes in tests.
package gateway

import (
	"context"
	"fmt"

	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pkg/errors"
)

// Gateway - remote operations on one image's shapes, metadata and channel settings. Failures are
// opaque to callers, who wrap them with WrapRemote so reports name the image and operation
type Gateway interface {
	FetchShapes(ctx context.Context, imageID int64) ([]roiModel.RemoteShape, error)
	FetchKeyValues(ctx context.Context, imageID int64) ([]roiModel.KeyValueEntry, error)
	// WriteShapes - returns false if the server accepted the request but did not store the shapes
	WriteShapes(ctx context.Context, imageID int64, shapes []roiModel.RemoteShape) (bool, error)
	DeleteShapes(ctx context.Context, imageID int64) error
	WriteKeyValues(ctx context.Context, imageID int64, values map[string]string) error
	FetchChannelSettings(ctx context.Context, imageID int64) ([]roiModel.ChannelSetting, error)
}

// Operation names used in RemoteAccessError
const (
	OpFetchShapes          = "fetch shapes"
	OpFetchKeyValues       = "fetch key-value pairs"
	OpWriteShapes          = "write shapes"
	OpDeleteShapes         = "delete shapes"
	OpWriteKeyValues       = "write key-value pairs"
	OpFetchChannelSettings = "fetch channel settings"
)

// RemoteAccessError - a gateway call failed
type RemoteAccessError struct {
	ImageID   int64
	Operation string
	Err       error
}

func (e *RemoteAccessError) Error() string {
	return fmt.Sprintf("failed to %v for image %v: %v", e.Operation, e.ImageID, e.Err)
}

func (e *RemoteAccessError) Unwrap() error {
	return e.Err
}

// Cause - lets errors.Cause see through us to the gateway's own error
func (e *RemoteAccessError) Cause() error {
	return e.Err
}

// WrapRemote - returns nil if err is nil
func WrapRemote(err error, imageID int64, operation string) error {
	if err == nil {
		return nil
	}
	return &RemoteAccessError{ImageID: imageID, Operation: operation, Err: errors.WithStack(err)}
}

func IsRemoteAccessError(err error) bool {
	var remoteErr *RemoteAccessError
	return errors.As(err, &remoteErr)
}
