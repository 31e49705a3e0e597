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

// Package command classifies Flictionary command bytes.
//
// A Flictionary file is a forward-only stream of commands. Each command
// starts with a single command byte whose high bits select the command:
//
//	0ooottss  BeginTrieNode: ooo is order-1 (orders 1-8), tt is the node type
//	          (0 CHAR, 1 WORD_FILLER, 2 WORD, 3 SHORTCUT) and ss is size-1
//	          (payload of 1-4 bytes).
//	110vvvvv  BeginHeader: vvvvv is the format version. Only valid as the
//	          first byte of the stream.
//	10cccccc  EndSection: cccccc is the number of sections to close (1-63).
//	1110xxxx  DefineShortcut: reserved. No payload layout is defined.
//
// Multi-byte numeric fields that follow command bytes are big-endian.
package command
