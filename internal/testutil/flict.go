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

package testutil

import (
	"encoding/binary"
	"fmt"
)

// Word is a word to encode in a test dictionary.
type Word struct {
	Word string

	// Frequency is the word frequency. Negative values encode a filler node.
	Frequency int
}

// Builder builds Flictionary streams command by command. Builder methods
// panic on arguments that cannot be encoded.
type Builder struct {
	b []byte
}

// NewBuilder returns a Builder with a version 0 header.
func NewBuilder(timestamp int64, payload string) *Builder {
	return NewBuilderVersion(0, timestamp, payload)
}

// NewBuilderVersion returns a Builder with a header of the given version.
func NewBuilderVersion(version int, timestamp int64, payload string) *Builder {
	if version < 0 || version > 0x1F {
		panic(fmt.Sprintf("unsupported version: %d", version))
	}
	if len(payload) > 0xFF {
		panic(fmt.Sprintf("header payload too long: %d", len(payload)))
	}
	b := make([]byte, 10, 10+len(payload))
	b[0] = 0xC0 | byte(version)
	b[1] = byte(len(payload))
	//nolint:gosec // two's complement reinterpretation is intended.
	binary.BigEndian.PutUint64(b[2:10], uint64(timestamp))
	b = append(b, payload...)
	return &Builder{b: b}
}

func nodeByte(order, nodeType int, fragment string) byte {
	if order < 1 || order > 8 {
		panic(fmt.Sprintf("unsupported order: %d", order))
	}
	if len(fragment) < 1 || len(fragment) > 4 {
		panic(fmt.Sprintf("unsupported fragment size: %q", fragment))
	}
	return byte((order-1)<<4 | nodeType<<2 | (len(fragment) - 1))
}

// Char appends a CHAR node command.
func (b *Builder) Char(order int, fragment string) *Builder {
	b.b = append(b.b, nodeByte(order, 0, fragment))
	b.b = append(b.b, fragment...)
	return b
}

// Filler appends a WORD_FILLER node command with a zero reserved byte.
func (b *Builder) Filler(order int, fragment string) *Builder {
	b.b = append(b.b, nodeByte(order, 1, fragment), 0)
	b.b = append(b.b, fragment...)
	return b
}

// Word appends a WORD node command.
func (b *Builder) Word(order int, fragment string, frequency byte) *Builder {
	b.b = append(b.b, nodeByte(order, 2, fragment), frequency)
	b.b = append(b.b, fragment...)
	return b
}

// Shortcut appends a SHORTCUT node command byte and fragment.
func (b *Builder) Shortcut(order int, fragment string) *Builder {
	b.b = append(b.b, nodeByte(order, 3, fragment))
	b.b = append(b.b, fragment...)
	return b
}

// End appends an end command closing n sections.
func (b *Builder) End(n int) *Builder {
	if n < 0 || n > 0x3F {
		panic(fmt.Sprintf("unsupported end count: %d", n))
	}
	b.b = append(b.b, 0x80|byte(n))
	return b
}

// Raw appends raw bytes.
func (b *Builder) Raw(raw ...byte) *Builder {
	b.b = append(b.b, raw...)
	return b
}

// Bytes returns the encoded stream.
func (b *Builder) Bytes() []byte {
	return b.b
}

// MakeDictionary encodes words as order 1 words. Words longer than four
// bytes are split into CHAR fragments.
func MakeDictionary(timestamp int64, payload string, words []*Word) []byte {
	b := NewBuilder(timestamp, payload)
	for _, w := range words {
		if w.Frequency > 0xFF {
			panic(fmt.Sprintf("word frequency too large: %d", w.Frequency))
		}
		var fragments []string
		for s := w.Word; len(s) > 0; {
			n := min(4, len(s))
			fragments = append(fragments, s[:n])
			s = s[n:]
		}
		if len(fragments) == 0 {
			panic("empty word")
		}
		for _, f := range fragments[:len(fragments)-1] {
			b.Char(1, f)
		}
		last := fragments[len(fragments)-1]
		if w.Frequency < 0 {
			b.Filler(1, last)
		} else {
			b.Word(1, last, byte(w.Frequency))
		}
		b.End(len(fragments))
	}
	return b.Bytes()
}
