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

package trie

import (
	"errors"
	"fmt"
	"io"
)

// ErrParse is the parent error of all decoding errors.
var ErrParse = errors.New("flictionary parse error")

// ErrorKind is the kind of a decoding error.
type ErrorKind int

const (
	// UnexpectedBeginHeader is a header command that is not the first byte.
	UnexpectedBeginHeader ErrorKind = iota + 1

	// UnexpectedBeginTrieNode is a trie node command at the first byte.
	UnexpectedBeginTrieNode

	// UnexpectedDefineShortcut is a shortcut trie node. Shortcut payloads are
	// not defined by the format.
	UnexpectedDefineShortcut

	// UnexpectedEnd is an end command at the first byte.
	UnexpectedEnd

	// UnexpectedEndZeroValue is an end command that closes no sections.
	UnexpectedEndZeroValue

	// SectionDepthBelowZero is an end command that closes more sections than
	// are open.
	SectionDepthBelowZero

	// SectionDepthNotZeroAtEof is a stream that ends with open sections.
	SectionDepthNotZeroAtEof

	// UnexpectedEof is a command whose payload runs past the end of the
	// stream.
	UnexpectedEof

	// InvalidCommandByte is a byte that is not a command.
	InvalidCommandByte
)

// String implements [fmt.Stringer.String].
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedBeginHeader:
		return "unexpected begin header"
	case UnexpectedBeginTrieNode:
		return "unexpected begin trie node"
	case UnexpectedDefineShortcut:
		return "unexpected define shortcut"
	case UnexpectedEnd:
		return "unexpected end"
	case UnexpectedEndZeroValue:
		return "unexpected end with zero value"
	case SectionDepthBelowZero:
		return "section depth below zero"
	case SectionDepthNotZeroAtEof:
		return "section depth not zero at end of file"
	case UnexpectedEof:
		return "unexpected end of file"
	case InvalidCommandByte:
		return "invalid command byte"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is a decoding error. It records where in the stream decoding
// failed.
type ParseError struct {
	// Kind is the kind of error.
	Kind ErrorKind

	// Address is the offset of the command byte that caused the error, or the
	// length of the stream for errors detected at the end of the stream.
	Address int

	// CommandByte is the command byte that caused the error.
	CommandByte byte

	// SectionDepth is the number of open sections when the error occurred.
	SectionDepth int
}

// Error implements [error.Error].
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v at address %d (command byte %#02x, section depth %d)",
		ErrParse, e.Kind, e.Address, e.CommandByte, e.SectionDepth)
}

// Is reports whether target is ErrParse or a *ParseError of the same kind.
// A *ParseError target with only Kind set matches any error of that kind.
func (e *ParseError) Is(target error) bool {
	//nolint:errorlint // ErrParse is compared by identity.
	if target == ErrParse {
		return true
	}
	t, ok := target.(*ParseError)
	if !ok || t == nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if t.Address == 0 && t.CommandByte == 0 && t.SectionDepth == 0 {
		return true
	}
	return *t == *e
}

// Unwrap returns [io.ErrUnexpectedEOF] for errors caused by a stream that
// ends early.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case UnexpectedEof, SectionDepthNotZeroAtEof:
		return io.ErrUnexpectedEOF
	default:
		return nil
	}
}
