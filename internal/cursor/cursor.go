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

// Package cursor implements a forward-only reader over an in-memory byte
// buffer.
package cursor

import (
	"encoding/binary"
)

// Cursor reads from an immutable byte buffer. The position only moves
// forward.
type Cursor struct {
	b   []byte
	pos int
}

// New returns a new Cursor positioned at the start of b.
func New(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Pos returns the absolute read position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.b)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.b) - c.pos
}

// Peek returns the byte at the current position. It returns false if the
// buffer is exhausted.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.b) {
		return 0, false
	}
	return c.b[c.pos], true
}

// Has reports whether at least n bytes remain to be read.
func (c *Cursor) Has(n int) bool {
	return n >= 0 && n <= c.Remaining()
}

// Byte returns the byte at offset off from the current position. The caller
// must check bounds with Has first.
func (c *Cursor) Byte(off int) byte {
	return c.b[c.pos+off]
}

// Bytes returns n bytes starting at offset off from the current position.
// The returned slice aliases the buffer and must not be modified. The caller
// must check bounds with Has first.
func (c *Cursor) Bytes(off, n int) []byte {
	start := c.pos + off
	return c.b[start : start+n : start+n]
}

// Int64 returns the big-endian signed 64-bit integer at offset off from the
// current position. The caller must check bounds with Has first.
func (c *Cursor) Int64(off int) int64 {
	//nolint:gosec // two's complement reinterpretation is intended.
	return int64(binary.BigEndian.Uint64(c.b[c.pos+off:]))
}

// Advance moves the position forward by n bytes, stopping at the end of the
// buffer. It returns the new position.
func (c *Cursor) Advance(n int) int {
	if n < 0 {
		n = 0
	}
	c.pos += min(n, c.Remaining())
	return c.pos
}
