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

// Command-line front end for exchanging ROIs, key-value pairs and channel settings between a
// local project file and the image server
package main

import (
	"context"
	"log"
	"os"

	"github.com/pixlise/roi-exchange/core/awsutil"
	"github.com/pixlise/roi-exchange/core/client"
	"github.com/pixlise/roi-exchange/core/fileaccess"
	"github.com/pixlise/roi-exchange/core/hierarchy"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/roisync"
	"github.com/pixlise/roi-exchange/core/shapeCodec"
	"github.com/pixlise/roi-exchange/core/utils"
)

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalln(err)
	}

	iLog := logger.NewStdOutLogger(logger.LogInfo)

	loc, err := fileaccess.ParseLocation(opts.projectPath)
	if err != nil {
		log.Fatalln(err)
	}

	fs, err := makeFileAccess(loc)
	if err != nil {
		log.Fatalf("Failed to access %v: %v", loc, err)
	}

	data, err := hierarchy.LoadImageData(fs, loc.Bucket, loc.Path, &utils.IDGen{})
	if err != nil {
		log.Fatalln(err)
	}

	cfg, err := client.LoadConfig(opts.clientConfig)
	if err != nil {
		log.Fatalln(err)
	}

	ctx := context.Background()
	gw, err := client.Connect(ctx, cfg, iLog)
	if err != nil {
		log.Fatalf("Failed to connect to %v: %v", cfg.Host, err)
	}
	defer gw.Close()

	syncer := roisync.NewSyncer(gw, shapeCodec.DefaultOptions(), iLog)
	syncer.AllOrNothing = opts.allOrNothing

	summary, modified, err := runCommand(ctx, opts, data, syncer)
	if err != nil {
		log.Fatalf("%v failed: %v", opts.command, err)
	}

	iLog.Infof("%v: %v", opts.command, summary)

	if modified {
		err = data.Save(fs, loc.Bucket, loc.Path)
		if err != nil {
			log.Fatalf("Failed to save %v: %v", loc, err)
		}
		iLog.Infof("Saved %v", loc)
	}
}

func makeFileAccess(loc fileaccess.Location) (fileaccess.FileAccess, error) {
	if !loc.IsS3 {
		return &fileaccess.FSAccess{}, nil
	}

	sess, err := awsutil.GetSession()
	if err != nil {
		return nil, err
	}
	return fileaccess.MakeS3Access(awsutil.GetS3(sess)), nil
}
