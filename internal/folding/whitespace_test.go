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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/transform"
)

func TestWhitespace_Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   []byte
		dst   []byte
		atEOF bool

		expected []byte
		nDst     int
		nSrc     int
		err      error
	}{
		{
			name:  "leading whitespace",
			src:   []byte(" \t　foo"),
			dst:   make([]byte, 5),
			atEOF: true,

			expected: []byte{'f', 'o', 'o', 0, 0},
			nDst:     3,
			nSrc:     8,
		},
		{
			name:  "trailing whitespace",
			src:   []byte("foo \t　"),
			dst:   make([]byte, 5),
			atEOF: true,

			expected: []byte{'f', 'o', 'o', 0, 0},
			nDst:     3,
			nSrc:     8,
		},
		{
			name:  "whitespace runs",
			src:   []byte("new \t　 york"),
			dst:   make([]byte, 10),
			atEOF: true,

			expected: []byte{'n', 'e', 'w', ' ', 'y', 'o', 'r', 'k', 0, 0},
			nDst:     8,
			nSrc:     13,
		},
		{
			name:  "short dst",
			src:   []byte("new york"),
			dst:   make([]byte, 4),
			atEOF: true,

			expected: []byte{'n', 'e', 'w', 0},
			nDst:     3,
			nSrc:     4,
			err:      transform.ErrShortDst,
		},
		{
			name: "short src incomplete unicode",
			// NOTE: the last character is only partially included.
			src:   []byte("foo 　")[:6],
			dst:   make([]byte, 10),
			atEOF: false,

			expected: []byte{'f', 'o', 'o', 0, 0, 0, 0, 0, 0, 0},
			nDst:     3,
			nSrc:     4,
			err:      transform.ErrShortSrc,
		},
		{
			name:  "invalid unicode",
			src:   []byte{'f', 'o', 'o', ' ', 0xff, 'b'},
			dst:   make([]byte, 10),
			atEOF: false,

			// NOTE: []byte{0xef, 0xbf, 0xbd} is utf8.RuneError.
			expected: []byte{'f', 'o', 'o', ' ', 0xef, 0xbf, 0xbd, 'b', 0, 0},
			nDst:     8,
			nSrc:     6,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			w := Whitespace{}
			nDst, nSrc, err := w.Transform(test.dst, test.src, test.atEOF)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("err (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.nDst, nDst); diff != "" {
				t.Fatalf("nDst (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.nSrc, nSrc); diff != "" {
				t.Fatalf("nSrc (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, test.dst); diff != "" {
				t.Fatalf("dst (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWhitespace_String(t *testing.T) {
	t.Parallel()

	got, _, err := transform.String(&Whitespace{}, "  hello \n\t world  ")
	if err != nil {
		t.Fatalf("transform.String: %v", err)
	}
	if diff := cmp.Diff("hello world", got); diff != "" {
		t.Fatalf("transform.String (-want, +got):\n%s", diff)
	}
}
