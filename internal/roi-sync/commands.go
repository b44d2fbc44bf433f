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

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixlise/roi-exchange/core/hierarchy"
	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/roisync"
	"github.com/pixlise/roi-exchange/core/utils"
)

// runCommand - runs opts.command against data. Returns a summary and whether data changed and
// needs saving
func runCommand(ctx context.Context, opts options, data *hierarchy.ImageData, syncer *roisync.Syncer) (string, bool, error) {
	imageID := opts.imageID
	if imageID <= 0 {
		imageID = data.ImageID
	}
	if imageID <= 0 {
		return "", false, fmt.Errorf("no image id given and none stored in project")
	}

	switch opts.command {
	case "import-rois":
		report, err := syncer.ImportROIs(ctx, imageID, data.Hierarchy, opts.objects)
		return report.String(), err == nil && report.Objects.Added > 0, err

	case "send-rois":
		objs, err := selectObjects(data.Hierarchy.GetObjects(), opts.selectedOnly)
		if err != nil {
			return "", false, err
		}
		report, err := syncer.SendROIs(ctx, imageID, objs, opts.deleteExisting)
		return report.String(), false, err

	case "import-kv":
		result, err := syncer.ImportKeyValues(ctx, imageID, data.Metadata, opts.policy)
		return result.String(), err == nil && result.Added+result.Updated+result.Removed > 0, err

	case "send-kv":
		result, err := syncer.SendKeyValues(ctx, imageID, data.Metadata, opts.policy)
		return result.String(), false, err

	case "import-channels":
		changed, err := syncer.ImportChannelSettings(ctx, imageID, data.Channels, opts.channelSettings)
		return fmt.Sprintf("%v of %v channels changed", changed, len(data.Channels)), err == nil && changed > 0, err
	}

	return "", false, fmt.Errorf("unknown command: %v", opts.command)
}

// selectObjects - objects whose ids are in the comma-separated ids, or all of them if ids is empty
func selectObjects(objs []*roiModel.LocalObject, ids string) ([]*roiModel.LocalObject, error) {
	if len(ids) <= 0 {
		return objs, nil
	}

	wanted := map[string]bool{}
	utils.AddItemsToSet(strings.Split(ids, ","), wanted)

	result := []*roiModel.LocalObject{}
	for _, obj := range objs {
		if wanted[obj.ID] {
			result = append(result, obj)
			delete(wanted, obj.ID)
		}
	}

	if len(wanted) > 0 {
		return nil, fmt.Errorf("objects not found in project: %v", strings.Join(utils.GetSortedMapKeys(wanted), ", "))
	}
	return result, nil
}
