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

// Package folding implements text transformers used to normalize dictionary
// words and queries before comparison.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Whitespace trims leading and trailing whitespace and replaces each internal
// run of whitespace with a single ASCII space.
type Whitespace struct {
	// seenText is true once a non-whitespace rune has been emitted.
	seenText bool

	// pending is true while inside a whitespace run that follows text.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(r) {
			nSrc += size
			w.pending = w.seenText
			continue
		}

		// Room is needed for the separator, if any, and the rune. Invalid
		// bytes are written as utf8.RuneError which is three bytes long.
		need := utf8.RuneLen(r)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.seenText = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	*w = Whitespace{}
}
