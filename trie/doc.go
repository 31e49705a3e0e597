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

// Package trie decodes Flictionary streams into a word prefix tree.
//
// A stream begins with a header:
//  1. The BeginHeader command byte.
//  2. The payload size S as a single byte.
//  3. A signed 64-bit timestamp in milliseconds in network byte order.
//  4. S bytes of utf-8 header payload.
//
// The header is followed by trie node and end commands. Every trie node
// command opens a section holding a word fragment. CHAR nodes only add a
// fragment. WORD and WORD_FILLER nodes complete a word from all open
// fragments of their order and add a [Node] to the tree. WORD nodes carry a
// frequency byte before the fragment. WORD_FILLER nodes carry a reserved byte
// in the same place. End commands close one or more sections. All sections
// must be closed at the end of the stream.
package trie
