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

package logger

import "fmt"

func Example_getLogLevel() {
	l, err := GetLogLevel("debug")
	fmt.Printf("%v|%v\n", GetLogLevelName(l), err)
	l, err = GetLogLevel("ERROR")
	fmt.Printf("%v|%v\n", GetLogLevelName(l), err)
	_, err = GetLogLevel("verbose")
	fmt.Printf("%v\n", err)

	// Output:
	// DEBUG|<nil>
	// ERROR|<nil>
	// invalid log level: verbose
}

func Example_memLogger() {
	l := &MemLogger{}
	l.Infof("Imported %v shapes", 3)
	l.Errorf("Skipped %v: %v", "mask", "not supported")
	fmt.Println(l.Lines())
	l.Clear()
	fmt.Println(len(l.Lines()))

	// Output:
	// [INFO: Imported 3 shapes ERROR: Skipped mask: not supported]
	// 0
}

func Example_stdOutLogger() {
	l := NewStdOutLogger(LogInfo)
	l.Debugf("hidden")
	l.Infof("shown %v", 1)
	l.SetLogLevel(LogDebug)
	l.Debugf("now shown")

	// Output:
	// INFO: shown 1
	// DEBUG: now shown
}
