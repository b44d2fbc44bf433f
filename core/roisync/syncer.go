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

// Runs the import/send operations between a local image (object hierarchy, metadata, channel
// settings) and the remote image server: fetch through the gateway, convert with the shape
// codec, merge with the reconciliation engine, and the same in reverse for sending.
package roisync

import (
	"context"
	"fmt"

	"github.com/pixlise/roi-exchange/core/channelSettings"
	"github.com/pixlise/roi-exchange/core/gateway"
	"github.com/pixlise/roi-exchange/core/hierarchy"
	"github.com/pixlise/roi-exchange/core/logger"
	"github.com/pixlise/roi-exchange/core/reconcile"
	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/shapeCodec"
	"github.com/pkg/errors"
)

type Syncer struct {
	gateway gateway.Gateway
	encoder *shapeCodec.Encoder
	decoder *shapeCodec.Decoder
	log     logger.ILogger

	// AllOrNothing - if set, one shape failing to convert aborts the whole operation before
	// anything is changed. Otherwise failing shapes are skipped and reported
	AllOrNothing bool
}

func NewSyncer(gw gateway.Gateway, codecOpts shapeCodec.Options, log logger.ILogger) *Syncer {
	return &Syncer{
		gateway: gw,
		encoder: shapeCodec.NewEncoder(codecOpts, log),
		decoder: shapeCodec.NewDecoder(codecOpts, log),
		log:     log,
	}
}

type ImportReport struct {
	Conversion shapeCodec.BatchReport
	Objects    reconcile.ObjectResult
}

func (r ImportReport) String() string {
	return r.Conversion.Summary() + "; " + r.Objects.String()
}

type SendReport struct {
	Conversion shapeCodec.BatchReport
	ShapesSent int
	Deleted    bool
}

func (r SendReport) String() string {
	return fmt.Sprintf("%v; sent %v shapes, deleted existing: %v", r.Conversion.Summary(), r.ShapesSent, r.Deleted)
}

// ImportROIs - fetches the image's shapes, decodes them and merges them into store. If the image
// has no shapes (or none could be decoded) the store is left alone
func (s *Syncer) ImportROIs(ctx context.Context, imageID int64, store hierarchy.Store, opts reconcile.ObjectImportOptions) (ImportReport, error) {
	report, err := s.importROIs(ctx, imageID, store, opts)
	countOperation("import-rois", err)
	return report, err
}

func (s *Syncer) importROIs(ctx context.Context, imageID int64, store hierarchy.Store, opts reconcile.ObjectImportOptions) (ImportReport, error) {
	report := ImportReport{}

	shapes, err := s.gateway.FetchShapes(ctx, imageID)
	if err != nil {
		return report, gateway.WrapRemote(err, imageID, gateway.OpFetchShapes)
	}

	objs, conversion, err := s.decoder.DecodeAll(shapes, s.AllOrNothing)
	report.Conversion = conversion
	countConversion(directionImport, conversion)
	if err != nil {
		return report, errors.Wrapf(err, "import of ROIs from image %v aborted", imageID)
	}

	if len(objs) <= 0 {
		s.log.Infof("No ROIs to import from image %v (%v)", imageID, conversion.Summary())
		return report, nil
	}

	report.Objects = reconcile.MergeObjects(store, objs, opts)
	s.log.Infof("Imported ROIs from image %v: %v", imageID, report)
	return report, nil
}

// SendROIs - encodes objects (compound polygons split into one polygon per ring) and writes them to
// the image, optionally deleting the image's existing shapes first. Nothing is deleted if there is
// nothing to send
func (s *Syncer) SendROIs(ctx context.Context, imageID int64, objects []*roiModel.LocalObject, deleteExisting bool) (SendReport, error) {
	report, err := s.sendROIs(ctx, imageID, objects, deleteExisting)
	countOperation("send-rois", err)
	return report, err
}

func (s *Syncer) sendROIs(ctx context.Context, imageID int64, objects []*roiModel.LocalObject, deleteExisting bool) (SendReport, error) {
	report := SendReport{}

	shapes, conversion, err := s.encoder.EncodeAll(objects, s.AllOrNothing)
	report.Conversion = conversion
	countConversion(directionSend, conversion)
	if err != nil {
		return report, errors.Wrapf(err, "sending ROIs to image %v aborted", imageID)
	}

	if len(shapes) <= 0 {
		s.log.Infof("No ROIs to send to image %v (%v)", imageID, conversion.Summary())
		return report, nil
	}

	if deleteExisting {
		err = s.gateway.DeleteShapes(ctx, imageID)
		if err != nil {
			return report, gateway.WrapRemote(err, imageID, gateway.OpDeleteShapes)
		}
		report.Deleted = true
	}

	ok, err := s.gateway.WriteShapes(ctx, imageID, shapes)
	if err != nil {
		return report, gateway.WrapRemote(err, imageID, gateway.OpWriteShapes)
	}
	if !ok {
		return report, gateway.WrapRemote(errors.New("server did not store the shapes"), imageID, gateway.OpWriteShapes)
	}

	report.ShapesSent = len(shapes)
	s.log.Infof("Sent ROIs to image %v: %v", imageID, report)
	return report, nil
}

// ImportKeyValues - merges the image's key-value pairs into local using policy. Duplicate remote
// keys fail the import with local untouched
func (s *Syncer) ImportKeyValues(ctx context.Context, imageID int64, local map[string]string, policy reconcile.Policy) (reconcile.KeyValueResult, error) {
	result, err := s.importKeyValues(ctx, imageID, local, policy)
	countOperation("import-kv", err)
	return result, err
}

func (s *Syncer) importKeyValues(ctx context.Context, imageID int64, local map[string]string, policy reconcile.Policy) (reconcile.KeyValueResult, error) {
	remote, err := s.gateway.FetchKeyValues(ctx, imageID)
	if err != nil {
		return reconcile.KeyValueResult{}, gateway.WrapRemote(err, imageID, gateway.OpFetchKeyValues)
	}

	result, err := reconcile.MergeKeyValues(local, remote, policy)
	if err != nil {
		return result, errors.Wrapf(err, "import of key-value pairs from image %v", imageID)
	}

	s.log.Infof("Imported key-value pairs from image %v with policy %v: %v", imageID, policy, result)
	return result, nil
}

// SendKeyValues - merges local into the image's key-value pairs using policy, then writes the result
// back. The remote set is replaced as a whole
func (s *Syncer) SendKeyValues(ctx context.Context, imageID int64, local map[string]string, policy reconcile.Policy) (reconcile.KeyValueResult, error) {
	result, err := s.sendKeyValues(ctx, imageID, local, policy)
	countOperation("send-kv", err)
	return result, err
}

func (s *Syncer) sendKeyValues(ctx context.Context, imageID int64, local map[string]string, policy reconcile.Policy) (reconcile.KeyValueResult, error) {
	remoteEntries, err := s.gateway.FetchKeyValues(ctx, imageID)
	if err != nil {
		return reconcile.KeyValueResult{}, gateway.WrapRemote(err, imageID, gateway.OpFetchKeyValues)
	}

	// Remote side has to be a proper map too, or we'd be silently dropping one of its values
	err = reconcile.CheckUniqueKeys(remoteEntries)
	if err != nil {
		return reconcile.KeyValueResult{}, errors.Wrapf(err, "key-value pairs on image %v", imageID)
	}

	remote := map[string]string{}
	for _, entry := range remoteEntries {
		remote[entry.Key] = entry.Value
	}

	result, err := reconcile.MergeKeyValues(remote, reconcile.MapToEntries(local), policy)
	if err != nil {
		return result, errors.Wrapf(err, "sending key-value pairs to image %v", imageID)
	}

	err = s.gateway.WriteKeyValues(ctx, imageID, remote)
	if err != nil {
		return result, gateway.WrapRemote(err, imageID, gateway.OpWriteKeyValues)
	}

	s.log.Infof("Sent key-value pairs to image %v with policy %v: %v", imageID, policy, result)
	return result, nil
}

// ImportChannelSettings - copies the selected channel attributes from the image onto local. Returns
// the number of channels changed
func (s *Syncer) ImportChannelSettings(ctx context.Context, imageID int64, local []roiModel.ChannelSetting, opts channelSettings.ChannelImportOptions) (int, error) {
	changed, err := s.importChannelSettings(ctx, imageID, local, opts)
	countOperation("import-channels", err)
	return changed, err
}

func (s *Syncer) importChannelSettings(ctx context.Context, imageID int64, local []roiModel.ChannelSetting, opts channelSettings.ChannelImportOptions) (int, error) {
	if !opts.Any() {
		s.log.Infof("No channel settings selected for import from image %v", imageID)
		return 0, nil
	}

	remote, err := s.gateway.FetchChannelSettings(ctx, imageID)
	if err != nil {
		return 0, gateway.WrapRemote(err, imageID, gateway.OpFetchChannelSettings)
	}

	changed, err := channelSettings.Apply(local, remote, opts)
	if err != nil {
		return 0, errors.Wrapf(err, "import of channel settings from image %v", imageID)
	}

	s.log.Infof("Imported channel settings from image %v: %v of %v channels changed", imageID, changed, len(local))
	return changed, nil
}
