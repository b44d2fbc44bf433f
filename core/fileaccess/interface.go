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

package fileaccess

import (
	"fmt"
	"strings"
)

// FileAccess - where project files and exported documents live. Implemented over the local file
// system and over S3 so the sync tool can be pointed at either with the same code. The first
// parameter is a root directory for the local file system or a bucket name for S3
type FileAccess interface {
	ListObjects(bucket string, prefix string) ([]string, error)

	ReadObject(bucket string, path string) ([]byte, error)
	WriteObject(bucket string, path string, data []byte) error

	ReadJSON(bucket string, path string, itemsPtr interface{}, emptyIfNotFound bool) error
	WriteJSON(bucket string, path string, itemsPtr interface{}) error

	DeleteObject(bucket string, path string) error

	IsNotFoundError(err error) bool
}

// Location - a parsed file location, either s3://bucket/path or a local path
type Location struct {
	IsS3   bool
	Bucket string
	Path   string
}

func (l Location) String() string {
	if l.IsS3 {
		return "s3://" + l.Bucket + "/" + l.Path
	}
	return l.Path
}

// ParseLocation - local paths are returned with an empty bucket, so FSAccess treats them relative
// to the working directory
func ParseLocation(loc string) (Location, error) {
	if len(loc) <= 0 {
		return Location{}, fmt.Errorf("no file location specified")
	}

	trimmed := strings.TrimPrefix(loc, "s3://")
	if trimmed == loc {
		return Location{Path: loc}, nil
	}

	// Get the bit before the first slash, that's the bucket
	slashPos := strings.Index(trimmed, "/")
	if slashPos <= 0 || slashPos == len(trimmed)-1 {
		return Location{}, fmt.Errorf("invalid S3 location, expected s3://bucket/path: %v", loc)
	}

	return Location{IsS3: true, Bucket: trimmed[0:slashPos], Path: trimmed[slashPos+1:]}, nil
}
