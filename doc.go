// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package flictionary implements a library for reading Flictionary
// dictionaries in pure Go.
//
// A Flictionary is a compact binary encoding of a prefix tree of words and
// their frequencies, used for word suggestions. A dictionary is a single file
// that may be stored as-is (.flict) or compressed using gzip (.flict.gz) or
// the dictzip format (.flict.dz).
//
// The binary format is described in the [command] and [trie] packages.
package flictionary
