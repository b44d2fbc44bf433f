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

package awsutil

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// MockS3Client - mock S3 client for unit tests. Requests are checked against the expected inputs in
// order and answered from the queued outputs. A nil queued output makes the call return an error.
// Call FinishTest() at the end of the test (defer it!) to check nothing was left unused
type MockS3Client struct {
	mutex sync.Mutex

	s3iface.S3API

	// Expected requests
	ExpListObjectsV2Input []s3.ListObjectsV2Input
	ExpGetObjectInput     []s3.GetObjectInput
	ExpPutObjectInput     []s3.PutObjectInput
	ExpDeleteObjectInput  []s3.DeleteObjectInput

	// Responses replayed as each request comes in
	QueuedListObjectsV2Output []*s3.ListObjectsV2Output
	QueuedGetObjectOutput     []*s3.GetObjectOutput
	QueuedPutObjectOutput     []*s3.PutObjectOutput
	QueuedDeleteObjectOutput  []*s3.DeleteObjectOutput

	// Errors to return instead of "Returning error from" when the queued output is nil
	QueuedGetObjectError []error
}

const ErrNoMoreInputsExpected = "No more inputs expected for "
const ErrWrongInput = "Incorrect input in "
const ErrNothingToReturn = "Nothing to return from "
const ErrReturningError = "Returning error from "

// FinishTest - prints (so example tests see it in their output) and returns an error if any
// expected calls were not made
func (m *MockS3Client) FinishTest() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var err error
	switch {
	case len(m.ExpListObjectsV2Input) > 0 || len(m.QueuedListObjectsV2Output) > 0:
		err = errors.New("Test expected more ListObjectsV2 calls")
	case len(m.ExpGetObjectInput) > 0 || len(m.QueuedGetObjectOutput) > 0:
		err = errors.New("Test expected more GetObject calls")
	case len(m.ExpPutObjectInput) > 0 || len(m.QueuedPutObjectOutput) > 0:
		err = errors.New("Test expected more PutObject calls")
	case len(m.ExpDeleteObjectInput) > 0 || len(m.QueuedDeleteObjectOutput) > 0:
		err = errors.New("Test expected more DeleteObject calls")
	}

	if err != nil {
		fmt.Println(err)
	}
	return err
}

// nextCall - pops the next expected input and queued output, checking the input matches
func nextCall[I any, O any](name string, expected *[]I, outputs *[]*O, received string, describe func(I) string) (*O, error) {
	if len(*expected) <= 0 {
		return nil, errors.New(ErrNoMoreInputsExpected + name)
	}

	exp := describe((*expected)[0])
	*expected = (*expected)[1:]

	if exp != received {
		return nil, fmt.Errorf("%v expected: \"%v\" S3 recvd: \"%v\"", ErrWrongInput+name, exp, received)
	}

	if len(*outputs) <= 0 {
		return nil, errors.New(ErrNothingToReturn + name)
	}

	result := (*outputs)[0]
	*outputs = (*outputs)[1:]

	if result == nil {
		return nil, errors.New(ErrReturningError + name)
	}
	return result, nil
}

func (m *MockS3Client) ListObjectsV2(input *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return nextCall("ListObjectsV2", &m.ExpListObjectsV2Input, &m.QueuedListObjectsV2Output, input.String(),
		func(i s3.ListObjectsV2Input) string { return i.String() })
}

func (m *MockS3Client) GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var queuedErr error
	if len(m.QueuedGetObjectOutput) > 0 && m.QueuedGetObjectOutput[0] == nil && len(m.QueuedGetObjectError) > 0 {
		queuedErr = m.QueuedGetObjectError[0]
		m.QueuedGetObjectError = m.QueuedGetObjectError[1:]
	}

	result, err := nextCall("GetObject", &m.ExpGetObjectInput, &m.QueuedGetObjectOutput, input.String(),
		func(i s3.GetObjectInput) string { return i.String() })

	if err != nil && queuedErr != nil {
		return nil, queuedErr
	}
	return result, err
}

func (m *MockS3Client) PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return nextCall("PutObject", &m.ExpPutObjectInput, &m.QueuedPutObjectOutput, describePut(*input), describePut)
}

func (m *MockS3Client) DeleteObject(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return nextCall("DeleteObject", &m.ExpDeleteObjectInput, &m.QueuedDeleteObjectOutput, input.String(),
		func(i s3.DeleteObjectInput) string { return i.String() })
}

// describePut - the generated String() doesn't print the body so we compare it ourselves. Reading
// it consumes the reader, so rewind it afterwards
func describePut(input s3.PutObjectInput) string {
	body := ""
	if input.Body != nil {
		data, err := io.ReadAll(input.Body)
		if err == nil {
			body = string(data)
		}
		input.Body.Seek(0, io.SeekStart)
	}
	return fmt.Sprintf("%v/%v: %v", aws.StringValue(input.Bucket), aws.StringValue(input.Key), body)
}
