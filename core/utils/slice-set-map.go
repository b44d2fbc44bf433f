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

// Exposes small generic helpers for slices, sets and maps, random ID strings and the
// JSON indent used when writing files
package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Simple Go helper functions
// stuff that you'd expect to be part of the std lib but aren't

func ItemInSlice[T comparable](a T, list []T) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

func AddItemsToSet[K comparable](keys []K, theSet map[K]bool) {
	for _, key := range keys {
		theSet[key] = true
	}
}

func GetMapKeys[K comparable, V any](theMap map[K]V) []K {
	result := []K{}

	for key := range theMap {
		result = append(result, key)
	}

	return result
}

// GetSortedMapKeys - same as GetMapKeys but in a deterministic order, for printing and tests
func GetSortedMapKeys[K constraints.Ordered, V any](theMap map[K]V) []K {
	result := GetMapKeys(theMap)
	slices.Sort(result)
	return result
}

// FindDuplicates - returns each value that appears more than once, sorted, each listed once
func FindDuplicates[T constraints.Ordered](items []T) []T {
	seen := map[T]int{}
	for _, item := range items {
		seen[item]++
	}

	result := []T{}
	for item, count := range seen {
		if count > 1 {
			result = append(result, item)
		}
	}
	slices.Sort(result)
	return result
}
