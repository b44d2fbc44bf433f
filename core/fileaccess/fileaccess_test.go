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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pixlise/roi-exchange/core/awsutil"
)

type testData struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func Example_parseLocation() {
	for _, loc := range []string{"s3://my-bucket/projects/img1.json", "./projects/img1.json", "s3://nopath", "s3://bucket/", ""} {
		l, err := ParseLocation(loc)
		fmt.Printf("%v|%v|%v|%v|%v\n", l.IsS3, l.Bucket, l.Path, l, err)
	}

	// Output:
	// true|my-bucket|projects/img1.json|s3://my-bucket/projects/img1.json|<nil>
	// false||./projects/img1.json|./projects/img1.json|<nil>
	// false||||invalid S3 location, expected s3://bucket/path: s3://nopath
	// false||||invalid S3 location, expected s3://bucket/path: s3://bucket/
	// false||||no file location specified
}

func Example_localFileSystem() {
	root, err := os.MkdirTemp("", "fileaccess")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(root)

	fs := &FSAccess{}

	fmt.Println(fs.WriteJSON(root, "projects/one.json", testData{Name: "Hello", Value: 778}))
	fmt.Println(fs.WriteObject(root, "projects/sub/data.bin", []byte{250, 130, 10}))

	var contents testData
	err = fs.ReadJSON(root, "projects/one.json", &contents, false)
	fmt.Println(err, contents)

	data, err := fs.ReadObject(root, "projects/sub/data.bin")
	fmt.Println(data, err)

	list, err := fs.ListObjects(root, "projects")
	fmt.Println(len(list), err)

	// Missing file is a not found error, and can be ignored for JSON reads
	_, err = fs.ReadObject(root, "projects/missing.json")
	fmt.Println(fs.IsNotFoundError(err))
	contents = testData{}
	err = fs.ReadJSON(root, "projects/missing.json", &contents, true)
	fmt.Println(err, contents)

	// Not JSON
	fmt.Println(fs.ReadJSON(root, "projects/sub/data.bin", &contents, false) != nil)

	fmt.Println(fs.DeleteObject(root, "projects/one.json"))
	list, err = fs.ListObjects(root, "projects")
	fmt.Println(list, err)

	// Output:
	// <nil>
	// <nil>
	// <nil> {Hello 778}
	// [250 130 10] <nil>
	// 2 <nil>
	// true
	// <nil> { 0}
	// true
	// <nil>
	// [projects/sub/data.bin] <nil>
}

func Example_s3ListingWithContinuation() {
	const bucket = "roi-projects"

	var mockS3 awsutil.MockS3Client
	defer mockS3.FinishTest()

	mockS3.ExpListObjectsV2Input = []s3.ListObjectsV2Input{
		{Bucket: aws.String(bucket), Prefix: aws.String("Images/")},
		{Bucket: aws.String(bucket), Prefix: aws.String("Images/"), ContinuationToken: aws.String("cont-1")},
	}
	mockS3.QueuedListObjectsV2Output = []*s3.ListObjectsV2Output{
		{
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("cont-1"),
			Contents: []*s3.Object{
				{Key: aws.String("Images/101/project.json")},
				{Key: aws.String("Images/101/")},
			},
		},
		{
			IsTruncated: aws.Bool(false),
			Contents: []*s3.Object{
				{Key: aws.String("Images/202/project.json")},
			},
		},
	}

	fs := MakeS3Access(&mockS3)
	list, err := fs.ListObjects(bucket, "Images/")
	fmt.Printf("%v, list: %v\n", err, list)

	// Output:
	// <nil>, list: [Images/101/project.json Images/202/project.json]
}

func Example_s3ReadWrite() {
	const bucket = "roi-projects"

	var mockS3 awsutil.MockS3Client
	defer mockS3.FinishTest()

	mockS3.ExpPutObjectInput = []s3.PutObjectInput{
		{Bucket: aws.String(bucket), Key: aws.String("a.json"), Body: bytes.NewReader([]byte("{\n    \"name\": \"Hi\",\n    \"value\": 3\n}"))},
	}
	mockS3.QueuedPutObjectOutput = []*s3.PutObjectOutput{{}}

	mockS3.ExpGetObjectInput = []s3.GetObjectInput{
		{Bucket: aws.String(bucket), Key: aws.String("a.json")},
		{Bucket: aws.String(bucket), Key: aws.String("missing.json")},
	}
	mockS3.QueuedGetObjectOutput = []*s3.GetObjectOutput{
		{Body: io.NopCloser(bytes.NewReader([]byte(`{"name": "Hi", "value": 3}`)))},
		nil,
	}
	mockS3.QueuedGetObjectError = []error{awserr.New(s3.ErrCodeNoSuchKey, "not found", nil)}

	fs := MakeS3Access(&mockS3)
	fmt.Println(fs.WriteJSON(bucket, "a.json", testData{Name: "Hi", Value: 3}))

	var contents testData
	err := fs.ReadJSON(bucket, "a.json", &contents, false)
	fmt.Println(err, contents)

	contents = testData{}
	err = fs.ReadJSON(bucket, "missing.json", &contents, true)
	fmt.Println(err, contents)

	// Output:
	// <nil>
	// <nil> {Hi 3}
	// <nil> { 0}
}
