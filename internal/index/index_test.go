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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type entry struct {
	key string
	n   int
}

func (e entry) String() string {
	return e.key
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	values := []entry{
		{"hello", 1},
		{"apple", 2},
		{"hello", 3},
		{"zoo", 4},
		{"apply", 5},
	}

	tests := []struct {
		name     string
		query    string
		expected []entry
	}{
		{
			name:     "single result",
			query:    "apple",
			expected: []entry{{"apple", 2}},
		},
		{
			name:     "duplicates keep file order",
			query:    "hello",
			expected: []entry{{"hello", 1}, {"hello", 3}},
		},
		{
			name:     "last",
			query:    "zoo",
			expected: []entry{{"zoo", 4}},
		},
		{
			name:     "prefix is not a match",
			query:    "app",
			expected: nil,
		},
		{
			name:     "no results",
			query:    "none",
			expected: nil,
		},
	}

	idx := NewIndex(values, strings.Compare)
	if diff := cmp.Diff(5, idx.Len()); diff != "" {
		t.Fatalf("Len (-want, +got):\n%s", diff)
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := idx.Search(test.query)
			if diff := cmp.Diff(test.expected, got, cmp.AllowUnexported(entry{})); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_empty(t *testing.T) {
	t.Parallel()

	idx := NewIndex([]entry(nil), strings.Compare)
	if got := idx.Search("foo"); got != nil {
		t.Fatalf("Search: want nil, got %v", got)
	}
}
