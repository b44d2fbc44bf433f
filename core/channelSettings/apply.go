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

// Copies channel display settings (names, display range, colour) read from the remote side onto
// the local image's channels.
package channelSettings

import (
	"fmt"

	"github.com/pixlise/roi-exchange/core/packedColour"
	"github.com/pixlise/roi-exchange/core/roiModel"
)

// ChannelImportOptions - which attributes to copy. All false copies nothing
type ChannelImportOptions struct {
	IncludeNames        bool
	IncludeDisplayRange bool
	IncludeColour       bool
}

func (o ChannelImportOptions) Any() bool {
	return o.IncludeNames || o.IncludeDisplayRange || o.IncludeColour
}

// ChannelCountMismatchError - settings can only be matched up by index, so both sides need the
// same number of channels
type ChannelCountMismatchError struct {
	Local  int
	Remote int
}

func (e *ChannelCountMismatchError) Error() string {
	return fmt.Sprintf("channel count mismatch: local image has %v channels, remote has %v", e.Local, e.Remote)
}

// Apply - copies the selected attributes from remote onto local, matched by position. Remote
// colours are packed RGBA and are stored locally as ARGB. Returns how many local channels changed.
// On error local is untouched
func Apply(local []roiModel.ChannelSetting, remote []roiModel.ChannelSetting, opts ChannelImportOptions) (int, error) {
	if len(local) != len(remote) {
		return 0, &ChannelCountMismatchError{Local: len(local), Remote: len(remote)}
	}

	for c := range remote {
		if opts.IncludeDisplayRange && remote[c].Max < remote[c].Min {
			return 0, fmt.Errorf("channel %v has invalid display range: %v to %v", c, remote[c].Min, remote[c].Max)
		}
	}

	changed := 0
	for c := range local {
		updated := local[c]
		if opts.IncludeNames && len(remote[c].Name) > 0 {
			updated.Name = remote[c].Name
		}
		if opts.IncludeDisplayRange {
			updated.Min = remote[c].Min
			updated.Max = remote[c].Max
		}
		if opts.IncludeColour {
			updated.Colour = packedColour.RgbaToArgb(remote[c].Colour)
		}

		if updated != local[c] {
			local[c] = updated
			changed++
		}
	}

	return changed, nil
}
