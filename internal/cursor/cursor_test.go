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

package cursor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	c := New([]byte{0xC0, 0x00, 0, 0, 0, 0, 0, 0, 0x01, 0x02, 'h', 'i'})

	if b, ok := c.Peek(); !ok || b != 0xC0 {
		t.Fatalf("Peek: got (%#x, %v)", b, ok)
	}
	if !c.Has(12) {
		t.Fatal("Has(12): expected true")
	}
	if c.Has(13) {
		t.Fatal("Has(13): expected false")
	}
	if diff := cmp.Diff(int64(0x0102), c.Int64(2)); diff != "" {
		t.Fatalf("Int64 (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(10, c.Advance(10)); diff != "" {
		t.Fatalf("Advance (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte("hi"), c.Bytes(0, 2)); diff != "" {
		t.Fatalf("Bytes (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(byte('i'), c.Byte(1)); diff != "" {
		t.Fatalf("Byte (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, c.Remaining()); diff != "" {
		t.Fatalf("Remaining (-want, +got):\n%s", diff)
	}

	// Advancing past the end stops at the end.
	if diff := cmp.Diff(12, c.Advance(100)); diff != "" {
		t.Fatalf("Advance past end (-want, +got):\n%s", diff)
	}
	if _, ok := c.Peek(); ok {
		t.Fatal("Peek at end: expected false")
	}
	if !c.Has(0) {
		t.Fatal("Has(0) at end: expected true")
	}
}

func TestCursor_negativeTimestamp(t *testing.T) {
	t.Parallel()

	c := New([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	if diff := cmp.Diff(int64(-1), c.Int64(0)); diff != "" {
		t.Fatalf("Int64 (-want, +got):\n%s", diff)
	}
}
