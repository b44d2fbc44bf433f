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

package channelSettings

import (
	"errors"
	"fmt"

	"github.com/pixlise/roi-exchange/core/packedColour"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

func makeLocal() []roiModel.ChannelSetting {
	return []roiModel.ChannelSetting{
		{Index: 0, Name: "Channel 1", Min: 0, Max: 255, Colour: packedColour.PackARGB(255, 255, 255, 255)},
		{Index: 1, Name: "Channel 2", Min: 0, Max: 255, Colour: packedColour.PackARGB(255, 255, 255, 255)},
	}
}

func makeRemote() []roiModel.ChannelSetting {
	return []roiModel.ChannelSetting{
		{Index: 0, Name: "DAPI", Min: 5, Max: 200, Colour: packedColour.PackRGBA(0, 0, 255, 255)},
		{Index: 1, Name: "", Min: 0, Max: 255, Colour: packedColour.PackRGBA(255, 255, 255, 255)},
	}
}

func printChannels(chs []roiModel.ChannelSetting) {
	for _, ch := range chs {
		fmt.Printf("  %v %v %v-%v %08x\n", ch.Index, ch.Name, ch.Min, ch.Max, uint32(ch.Colour))
	}
}

func Example_apply() {
	for _, opts := range []ChannelImportOptions{
		{},
		{IncludeNames: true},
		{IncludeDisplayRange: true},
		{IncludeColour: true},
		{IncludeNames: true, IncludeDisplayRange: true, IncludeColour: true},
	} {
		local := makeLocal()
		changed, err := Apply(local, makeRemote(), opts)
		fmt.Printf("%+v any=%v: %v %v\n", opts, opts.Any(), changed, err)
		printChannels(local)
	}

	// Output:
	// {IncludeNames:false IncludeDisplayRange:false IncludeColour:false} any=false: 0 <nil>
	//   0 Channel 1 0-255 ffffffff
	//   1 Channel 2 0-255 ffffffff
	// {IncludeNames:true IncludeDisplayRange:false IncludeColour:false} any=true: 1 <nil>
	//   0 DAPI 0-255 ffffffff
	//   1 Channel 2 0-255 ffffffff
	// {IncludeNames:false IncludeDisplayRange:true IncludeColour:false} any=true: 1 <nil>
	//   0 Channel 1 5-200 ffffffff
	//   1 Channel 2 0-255 ffffffff
	// {IncludeNames:false IncludeDisplayRange:false IncludeColour:true} any=true: 1 <nil>
	//   0 Channel 1 0-255 ff0000ff
	//   1 Channel 2 0-255 ffffffff
	// {IncludeNames:true IncludeDisplayRange:true IncludeColour:true} any=true: 1 <nil>
	//   0 DAPI 5-200 ff0000ff
	//   1 Channel 2 0-255 ffffffff
}

func Example_applyFailures() {
	local := makeLocal()
	_, err := Apply(local[:1], makeRemote(), ChannelImportOptions{IncludeNames: true})
	fmt.Println(err)

	var countErr *ChannelCountMismatchError
	isCount := errors.As(err, &countErr)
	fmt.Println(isCount, countErr.Local, countErr.Remote)

	remote := makeRemote()
	remote[1].Min = 300
	changed, err := Apply(local, remote, ChannelImportOptions{IncludeNames: true, IncludeDisplayRange: true})
	fmt.Println(changed, err)
	printChannels(local)

	// Output:
	// channel count mismatch: local image has 1 channels, remote has 2
	// true 1 2
	// 0 channel 1 has invalid display range: 300 to 255
	//   0 Channel 1 0-255 ffffffff
	//   1 Channel 2 0-255 ffffffff
}
