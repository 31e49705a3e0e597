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

	"github.com/ianlewis/go-flictionary/command"
	"github.com/ianlewis/go-flictionary/internal/cursor"
	"github.com/ianlewis/go-flictionary/internal/section"
)

const (
	// headerFixedSize is the command byte, the size byte and the timestamp.
	headerFixedSize = 10
	timestampOffset = 2
)

type decoder struct {
	c      *cursor.Cursor
	s      section.Stack
	header *Header
	root   *Node

	// current holds the most recently created node for each order.
	current [command.MaxOrder + 1]*Node

	// last is the most recently read command byte.
	last byte
}

// Decode decodes a Flictionary stream. It returns the header and the
// synthetic root node whose children are the order 1 nodes. Any malformed
// input aborts decoding and returns a *ParseError.
func Decode(b []byte) (*Header, *Node, error) {
	d := &decoder{
		c: cursor.New(b),
		root: &Node{
			Frequency: FillerFrequency,
		},
	}

	if d.c.Len() == 0 {
		return nil, nil, d.fail(UnexpectedEof, 0)
	}

	for {
		cmdByte, ok := d.c.Peek()
		if !ok {
			break
		}
		d.last = cmdByte
		if err := d.step(cmdByte); err != nil {
			return nil, nil, err
		}
	}

	if d.s.Depth() != 0 {
		return nil, nil, &ParseError{
			Kind:         SectionDepthNotZeroAtEof,
			Address:      d.c.Pos(),
			CommandByte:  d.last,
			SectionDepth: d.s.Depth(),
		}
	}

	return d.header, d.root, nil
}

// fail returns a *ParseError for the command at the current position.
func (d *decoder) fail(kind ErrorKind, cmdByte byte) *ParseError {
	return &ParseError{
		Kind:         kind,
		Address:      d.c.Pos(),
		CommandByte:  cmdByte,
		SectionDepth: d.s.Depth(),
	}
}

func (d *decoder) step(cmdByte byte) error {
	cmd, err := command.Classify(cmdByte, d.c.Pos())
	if err != nil {
		return d.fail(classifyErrorKind(err), cmdByte)
	}

	switch cmd.Kind {
	case command.BeginHeader:
		return d.beginHeader(cmd)
	case command.BeginTrieNode:
		return d.beginTrieNode(cmd)
	case command.EndSection:
		return d.endSection(cmd)
	default:
		return d.fail(InvalidCommandByte, cmdByte)
	}
}

func classifyErrorKind(err error) ErrorKind {
	switch {
	case errors.Is(err, command.ErrUnexpectedBeginHeader):
		return UnexpectedBeginHeader
	case errors.Is(err, command.ErrUnexpectedBeginTrieNode):
		return UnexpectedBeginTrieNode
	case errors.Is(err, command.ErrUnexpectedEnd):
		return UnexpectedEnd
	case errors.Is(err, command.ErrUnexpectedEndZeroValue):
		return UnexpectedEndZeroValue
	default:
		return InvalidCommandByte
	}
}

func (d *decoder) beginHeader(cmd command.Command) error {
	if !d.c.Has(headerFixedSize) {
		return d.fail(UnexpectedEof, cmd.Byte)
	}
	size := int(d.c.Byte(1))
	if !d.c.Has(headerFixedSize + size) {
		return d.fail(UnexpectedEof, cmd.Byte)
	}

	d.header = &Header{
		Version:   cmd.Version,
		Timestamp: d.c.Int64(timestampOffset),
		Payload:   string(d.c.Bytes(headerFixedSize, size)),
	}
	d.c.Advance(headerFixedSize + size)
	return nil
}

func (d *decoder) beginTrieNode(cmd command.Command) error {
	switch cmd.Type {
	case command.Char:
		n := 1 + cmd.Size
		if !d.c.Has(n) {
			return d.fail(UnexpectedEof, cmd.Byte)
		}
		if err := d.s.Push(cmd.Order, string(d.c.Bytes(1, cmd.Size))); err != nil {
			return d.fail(InvalidCommandByte, cmd.Byte)
		}
		d.c.Advance(n)
		return nil

	case command.WordFiller, command.Word:
		// Both carry one byte before the fragment. It is the frequency for
		// WORD and reserved for WORD_FILLER.
		n := 2 + cmd.Size
		if !d.c.Has(n) {
			return d.fail(UnexpectedEof, cmd.Byte)
		}
		freq := FillerFrequency
		if cmd.Type == command.Word {
			freq = int(d.c.Byte(1))
		}
		word, err := d.s.Commit(cmd.Order, string(d.c.Bytes(2, cmd.Size)))
		if err != nil {
			return d.fail(InvalidCommandByte, cmd.Byte)
		}
		d.link(&Node{
			Order:     cmd.Order,
			Word:      word,
			Frequency: freq,
		})
		d.c.Advance(n)
		return nil

	default:
		return d.fail(UnexpectedDefineShortcut, cmd.Byte)
	}
}

// link attaches node to the most recent node of the previous order.
func (d *decoder) link(node *Node) {
	parent := d.root
	for o := node.Order - 1; o >= 1; o-- {
		if d.current[o] != nil {
			parent = d.current[o]
			break
		}
	}
	parent.Children = append(parent.Children, node)

	d.current[node.Order] = node
	for o := node.Order + 1; o < len(d.current); o++ {
		d.current[o] = nil
	}
}

func (d *decoder) endSection(cmd command.Command) error {
	if err := d.s.Pop(cmd.Count); err != nil {
		return d.fail(SectionDepthBelowZero, cmd.Byte)
	}
	d.c.Advance(1)
	return nil
}
