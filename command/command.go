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

package command

import (
	"errors"
	"fmt"
)

const (
	maskBeginTrieNode = 0x80
	cmdBeginTrieNode  = 0x00

	maskBeginHeader = 0xE0
	cmdBeginHeader  = 0xC0

	maskEndSection = 0xC0
	cmdEndSection  = 0x80

	maskDefineShortcut = 0xF0
	cmdDefineShortcut  = 0xE0

	attrOrder   = 0x70
	attrType    = 0x0C
	attrSize    = 0x03
	attrVersion = 0x1F
	attrCount   = 0x3F
)

// MaxOrder is the deepest n-gram order a trie node can have.
const MaxOrder = 8

var (
	// ErrUnexpectedBeginHeader is returned for a BeginHeader command that is
	// not the first byte of the stream.
	ErrUnexpectedBeginHeader = errors.New("unexpected begin header")

	// ErrUnexpectedBeginTrieNode is returned for a BeginTrieNode command at
	// the first byte of the stream.
	ErrUnexpectedBeginTrieNode = errors.New("unexpected begin trie node")

	// ErrUnexpectedEnd is returned for an EndSection command at the first
	// byte of the stream.
	ErrUnexpectedEnd = errors.New("unexpected end")

	// ErrUnexpectedEndZeroValue is returned for an EndSection command that
	// closes zero sections.
	ErrUnexpectedEndZeroValue = errors.New("unexpected end with zero value")

	// ErrInvalidCommandByte is returned for bytes that are not a command.
	ErrInvalidCommandByte = errors.New("invalid command byte")
)

// Kind is the kind of a command.
type Kind int

const (
	// Invalid is a byte that does not match any command.
	Invalid Kind = iota

	// BeginHeader starts the file header.
	BeginHeader

	// BeginTrieNode opens a trie node section.
	BeginTrieNode

	// EndSection closes one or more sections.
	EndSection
)

// String implements [fmt.Stringer.String].
func (k Kind) String() string {
	switch k {
	case BeginHeader:
		return "BeginHeader"
	case BeginTrieNode:
		return "BeginTrieNode"
	case EndSection:
		return "EndSection"
	default:
		return "Invalid"
	}
}

// NodeType is the type of a trie node command.
type NodeType int

const (
	// Char is a word fragment that does not complete a word.
	Char NodeType = 0

	// WordFiller completes a structural word with no frequency.
	WordFiller NodeType = 1

	// Word completes a word and carries a frequency byte.
	Word NodeType = 2

	// Shortcut is reserved for shortcut nodes.
	Shortcut NodeType = 3
)

// String implements [fmt.Stringer.String].
func (t NodeType) String() string {
	switch t {
	case Char:
		return "CHAR"
	case WordFiller:
		return "WORD_FILLER"
	case Word:
		return "WORD"
	case Shortcut:
		return "SHORTCUT"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Command is a decoded command byte.
type Command struct {
	// Kind is the command kind.
	Kind Kind

	// Byte is the raw command byte.
	Byte byte

	// Order is the n-gram order (1-8) of a BeginTrieNode command.
	Order int

	// Type is the node type of a BeginTrieNode command.
	Type NodeType

	// Size is the fragment size in bytes (1-4) of a BeginTrieNode command.
	Size int

	// Version is the format version of a BeginHeader command.
	Version int

	// Count is the number of sections closed by an EndSection command.
	Count int
}

// Classify interprets the command byte b read at stream position pos. The
// returned Command is populated even when an error is returned so callers
// can report the offending byte.
func Classify(b byte, pos int) (Command, error) {
	c := Command{Byte: b}

	// The masks overlap so the order of the tests matters.
	switch {
	case b&maskBeginTrieNode == cmdBeginTrieNode:
		c.Kind = BeginTrieNode
		c.Order = int((b&attrOrder)>>4) + 1
		c.Type = NodeType((b & attrType) >> 2)
		c.Size = int(b&attrSize) + 1
		if pos == 0 {
			return c, ErrUnexpectedBeginTrieNode
		}
	case b&maskBeginHeader == cmdBeginHeader:
		c.Kind = BeginHeader
		c.Version = int(b & attrVersion)
		if pos != 0 {
			return c, ErrUnexpectedBeginHeader
		}
	case b&maskEndSection == cmdEndSection:
		c.Kind = EndSection
		c.Count = int(b & attrCount)
		if pos == 0 {
			return c, ErrUnexpectedEnd
		}
		if c.Count == 0 {
			return c, ErrUnexpectedEndZeroValue
		}
	default:
		c.Kind = Invalid
		return c, ErrInvalidCommandByte
	}
	return c, nil
}

// IsDefineShortcut reports whether b has the reserved DefineShortcut bit
// pattern. Classify reports such bytes as invalid.
func IsDefineShortcut(b byte) bool {
	return b&maskDefineShortcut == cmdDefineShortcut
}
