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

package section

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestStack_Commit(t *testing.T) {
	t.Parallel()

	var s Stack
	if err := s.Push(1, "ap"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	w, err := s.Commit(1, "p")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if diff := cmp.Diff("app", w); diff != "" {
		t.Fatalf("Commit (-want, +got):\n%s", diff)
	}

	// Deeper commits see the same prefix.
	w, err = s.Commit(1, "le")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if diff := cmp.Diff("apple", w); diff != "" {
		t.Fatalf("Commit (-want, +got):\n%s", diff)
	}

	// Other orders are independent.
	w, err = s.Commit(2, "pie")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if diff := cmp.Diff("pie", w); diff != "" {
		t.Fatalf("Commit (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(4, s.Depth()); diff != "" {
		t.Fatalf("Depth (-want, +got):\n%s", diff)
	}
}

func TestStack_Pop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		push  map[int][]string
		n     int
		depth int

		expected map[int][]string
		err      error
	}{
		{
			name: "deepest order first",
			push: map[int][]string{
				1: {"a", "b"},
				2: {"c"},
			},
			n:     1,
			depth: 2,

			expected: map[int][]string{
				1: {"a", "b"},
				2: {},
			},
		},
		{
			name: "spans orders",
			push: map[int][]string{
				1: {"a", "b", "c"},
				3: {"d", "e"},
			},
			n:     3,
			depth: 2,

			expected: map[int][]string{
				1: {"a", "b"},
				3: {},
			},
		},
		{
			name: "partial from end",
			push: map[int][]string{
				1: {"a", "b", "c"},
			},
			n:     2,
			depth: 1,

			expected: map[int][]string{
				1: {"a"},
			},
		},
		{
			name: "all",
			push: map[int][]string{
				1: {"a"},
				8: {"b"},
			},
			n:     2,
			depth: 0,

			expected: map[int][]string{
				1: {},
				8: {},
			},
		},
		{
			name: "below zero",
			push: map[int][]string{
				1: {"a"},
			},
			n:     2,
			depth: 1,

			expected: map[int][]string{
				1: {"a"},
			},
			err: ErrDepthBelowZero,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var s Stack
			for order := 1; order <= MaxOrder; order++ {
				for _, f := range test.push[order] {
					if err := s.Push(order, f); err != nil {
						t.Fatalf("Push: %v", err)
					}
				}
			}

			err := s.Pop(test.n)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Pop err (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.depth, s.Depth()); diff != "" {
				t.Fatalf("Depth (-want, +got):\n%s", diff)
			}
			for order, want := range test.expected {
				if diff := cmp.Diff(want, s.Fragments(order), cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("Fragments(%d) (-want, +got):\n%s", order, diff)
				}
			}
		})
	}
}

func TestStack_invalidOrder(t *testing.T) {
	t.Parallel()

	var s Stack
	for _, order := range []int{0, 9} {
		if err := s.Push(order, "x"); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("Push(%d): want %v, got %v", order, ErrInvalidOrder, err)
		}
	}
	if diff := cmp.Diff(0, s.Depth()); diff != "" {
		t.Fatalf("Depth (-want, +got):\n%s", diff)
	}
}
