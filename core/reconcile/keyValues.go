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

// Reconciliation of incoming objects and metadata against what's already held locally (or
// remotely, when sending). The same merge engine serves both directions.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/pixlise/roi-exchange/core/roiModel"
	"github.com/pixlise/roi-exchange/core/utils"
)

// Policy - how incoming key-value pairs are merged into an existing set
type Policy int

const (
	// Existing values win, only keys not already present are added
	KeepAndAdd Policy = iota
	// Incoming values overwrite matching keys, new keys are added
	ReplaceAndAdd
	// Existing set is cleared, then everything incoming is added
	DeleteAllAndAdd
)

var policyNames = map[Policy]string{
	KeepAndAdd:      "keep",
	ReplaceAndAdd:   "replace",
	DeleteAllAndAdd: "delete",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy - accepts the short names String returns, or the long form (eg "keep-and-add")
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, short := range policyNames {
		if name == short || name == short+"-and-add" || name == short+"-all-and-add" {
			return p, nil
		}
	}
	return KeepAndAdd, fmt.Errorf("unknown merge policy: \"%v\", expected one of keep, replace, delete", name)
}

// DuplicateKeyError - the incoming data named the same key more than once, so there's no single
// value to merge
type DuplicateKeyError struct {
	Keys []string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate keys in source: %v", strings.Join(e.Keys, ", "))
}

// CheckUniqueKeys - returns a *DuplicateKeyError listing every repeated key (sorted) if the
// entries don't have unique keys
func CheckUniqueKeys(entries []roiModel.KeyValueEntry) error {
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}

	dups := utils.FindDuplicates(keys)
	if len(dups) > 0 {
		return &DuplicateKeyError{Keys: dups}
	}
	return nil
}

// KeyValueResult - what a merge did. Existing counts incoming keys that were already present
// (for DeleteAllAndAdd, the size of the set before it was cleared)
type KeyValueResult struct {
	Existing int
	Added    int
	Updated  int
	Removed  int
}

func (r KeyValueResult) String() string {
	return fmt.Sprintf("existing: %v, added: %v, updated: %v, removed: %v", r.Existing, r.Added, r.Updated, r.Removed)
}

// MergeKeyValues - merges incoming into existing (in place) according to policy. Precondition
// failures (duplicate incoming keys, unknown policy) return an error before anything is touched.
// Updated only counts keys whose value actually changed
func MergeKeyValues(existing map[string]string, incoming []roiModel.KeyValueEntry, policy Policy) (KeyValueResult, error) {
	result := KeyValueResult{}

	if existing == nil {
		return result, fmt.Errorf("no existing key-value map to merge into")
	}
	if _, ok := policyNames[policy]; !ok {
		return result, fmt.Errorf("unknown merge policy: %v", policy)
	}
	if err := CheckUniqueKeys(incoming); err != nil {
		return result, err
	}

	if policy == DeleteAllAndAdd {
		result.Existing = len(existing)
		result.Removed = len(existing)
		for k := range existing {
			delete(existing, k)
		}
	}

	for _, entry := range incoming {
		value, ok := existing[entry.Key]
		if !ok {
			existing[entry.Key] = entry.Value
			result.Added++
			continue
		}

		result.Existing++
		if policy == ReplaceAndAdd && value != entry.Value {
			existing[entry.Key] = entry.Value
			result.Updated++
		}
	}

	return result, nil
}

// MapToEntries - entries in key order, so results are stable
func MapToEntries(values map[string]string) []roiModel.KeyValueEntry {
	result := make([]roiModel.KeyValueEntry, 0, len(values))
	for _, k := range utils.GetSortedMapKeys(values) {
		result = append(result, roiModel.KeyValueEntry{Key: k, Value: values[k]})
	}
	return result
}
