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

// Package section tracks open sections and pending word fragments while a
// Flictionary command stream is decoded.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// MaxOrder is the number of n-gram order levels.
const MaxOrder = 8

var (
	// ErrDepthBelowZero is returned when more sections are closed than are
	// open.
	ErrDepthBelowZero = errors.New("section depth below zero")

	// ErrInvalidOrder is returned for orders outside 1-MaxOrder.
	ErrInvalidOrder = errors.New("invalid order")
)

// Stack holds the fragments of words that are not yet complete, one list per
// order. Every open section owns exactly one fragment.
type Stack struct {
	words [MaxOrder][]string
	depth int
}

// Depth returns the number of open sections.
func (s *Stack) Depth() int {
	return s.depth
}

// Push opens a section holding fragment at the given order.
func (s *Stack) Push(order int, fragment string) error {
	if order < 1 || order > MaxOrder {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	s.words[order-1] = append(s.words[order-1], fragment)
	s.depth++
	return nil
}

// Commit opens a section holding fragment at the given order and returns the
// full word made of all fragments at that order. The fragments stay on the
// stack so deeper sections continue to see the same prefix.
func (s *Stack) Commit(order int, fragment string) (string, error) {
	if err := s.Push(order, fragment); err != nil {
		return "", err
	}
	return strings.Join(s.words[order-1], ""), nil
}

// Fragments returns the pending fragments at the given order.
func (s *Stack) Fragments(order int) []string {
	if order < 1 || order > MaxOrder {
		return nil
	}
	return s.words[order-1]
}

// Pop closes n sections, removing fragments from the deepest order first.
func (s *Stack) Pop(n int) error {
	if n > s.depth {
		return fmt.Errorf("%w: closing %d of %d", ErrDepthBelowZero, n, s.depth)
	}

	remaining := n
	for i := MaxOrder - 1; i >= 0 && remaining > 0; i-- {
		l := len(s.words[i])
		if l >= remaining {
			s.words[i] = s.words[i][:l-remaining]
			remaining = 0
			break
		}
		s.words[i] = s.words[i][:0]
		remaining -= l
	}
	s.depth -= n
	return nil
}
