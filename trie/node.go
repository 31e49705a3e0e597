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
	"time"
)

// FillerFrequency is the frequency of structural nodes that are not words.
const FillerFrequency = -1

// Node is a node in the decoded prefix tree. Nodes are not modified after
// decoding and may be read concurrently.
type Node struct {
	// Order is the n-gram order of the node. The root has order 0.
	Order int

	// Word is the full word text of the node.
	Word string

	// Frequency is the word's rank weight or FillerFrequency.
	Frequency int

	// Children are the nodes of the next order attached to this node.
	Children []*Node
}

// IsFiller reports whether n is a structural node rather than a word.
func (n *Node) IsFiller() bool {
	return n.Frequency < 0
}

// Walk calls fn for n and each of its descendants in depth-first order along
// with their distance from n. Walk stops descending into a node's children
// when fn returns false.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Header is the Flictionary file header.
type Header struct {
	// Version is the format version.
	Version int

	// Timestamp is the creation time in milliseconds since the Unix epoch.
	Timestamp int64

	// Payload is free-form metadata.
	Payload string
}

// Time returns the header timestamp as a [time.Time].
func (h *Header) Time() time.Time {
	return time.UnixMilli(h.Timestamp)
}
