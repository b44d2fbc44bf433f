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
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pixlise/roi-exchange/core/channelSettings"
	"github.com/pixlise/roi-exchange/core/reconcile"
	"github.com/pixlise/roi-exchange/core/utils"
)

var commands = []string{"import-rois", "send-rois", "import-kv", "send-kv", "import-channels"}

// The choices a user would otherwise make in a dialog, plus where to find things
type options struct {
	command      string
	projectPath  string
	clientConfig string
	imageID      int64
	allOrNothing bool

	objects         reconcile.ObjectImportOptions
	deleteExisting  bool
	selectedOnly    string // comma-separated object ids to send, empty for all
	policy          reconcile.Policy
	channelSettings channelSettings.ChannelImportOptions
}

func usage() string {
	return fmt.Sprintf("usage: roi-sync <%v> -project <path or s3://bucket/path> [flags]", strings.Join(commands, "|"))
}

func parseArgs(args []string, output io.Writer) (options, error) {
	opts := options{}

	if len(args) < 1 || !utils.ItemInSlice(args[0], commands) {
		return opts, fmt.Errorf("%v", usage())
	}
	opts.command = args[0]

	var policyName string

	fs := flag.NewFlagSet(opts.command, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.projectPath, "project", "", "Project file holding the local image data. Local path or s3://bucket/path")
	fs.StringVar(&opts.clientConfig, "clientConfig", "", "Path to the client config JSON. If empty, read from ROIEXCHANGE_CLIENT_CONFIG")
	fs.Int64Var(&opts.imageID, "image", 0, "Remote image id. Defaults to the one stored in the project")
	fs.BoolVar(&opts.allOrNothing, "all-or-nothing", false, "Abort if any ROI fails to convert, instead of skipping it")

	fs.BoolVar(&opts.objects.RemoveAnnotations, "remove-annotations", false, "import-rois: remove existing annotations first")
	fs.BoolVar(&opts.objects.RemoveDetections, "remove-detections", false, "import-rois: remove existing detections first")
	fs.BoolVar(&opts.deleteExisting, "delete-existing", false, "send-rois: delete the image's existing shapes first")
	fs.StringVar(&opts.selectedOnly, "objects", "", "send-rois: comma-separated ids of the objects to send, default all")
	fs.StringVar(&policyName, "policy", "keep", "import-kv/send-kv: keep, replace or delete")
	fs.BoolVar(&opts.channelSettings.IncludeNames, "names", false, "import-channels: import channel names")
	fs.BoolVar(&opts.channelSettings.IncludeDisplayRange, "range", false, "import-channels: import display ranges")
	fs.BoolVar(&opts.channelSettings.IncludeColour, "colour", false, "import-channels: import channel colours")

	err := fs.Parse(args[1:])
	if err != nil {
		return opts, err
	}

	if len(opts.projectPath) <= 0 {
		return opts, fmt.Errorf("-project is required")
	}

	opts.policy, err = reconcile.ParsePolicy(policyName)
	if err != nil {
		return opts, err
	}

	return opts, nil
}
