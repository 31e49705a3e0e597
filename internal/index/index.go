// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a sorted in-memory index of dictionary words.
package index

import (
	"fmt"
	"slices"
)

// Index is a sorted array of values keyed by their String value.
type Index[V fmt.Stringer] struct {
	// values are sorted by key. Values with equal keys keep their original
	// relative order.
	values []V

	cmp func(string, string) int
}

// NewIndex creates an index from the given values and comparison function.
// cmp(a, b) should return a negative number when a < b, a positive number
// when a > b and zero when a == b. values is not modified.
func NewIndex[V fmt.Stringer](values []V, cmp func(string, string) int) *Index[V] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(a.String(), b.String())
	})

	return &Index[V]{
		values: sorted,
		cmp:    cmp,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}

// Search returns all values whose key equals query.
func (idx *Index[V]) Search(query string) []V {
	i, found := slices.BinarySearchFunc(idx.values, query, func(v V, q string) int {
		return idx.cmp(v.String(), q)
	})
	if !found {
		return nil
	}

	j := i + 1
	for j < len(idx.values) && idx.cmp(idx.values[j].String(), query) == 0 {
		j++
	}
	return idx.values[i:j]
}
