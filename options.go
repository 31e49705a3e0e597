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

package flictionary

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ianlewis/go-flictionary/internal/folding"
)

// Options are options for reading a dictionary.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on dictionary words and query
	// text before they are compared.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for a Dictionary. Words are compared
// as-is.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
}

// DefaultFolder returns a transformer that removes diacritics, performs
// Unicode case folding and folds whitespace. It is suitable as the Folder
// option for case and accent insensitive queries.
func DefaultFolder() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		cases.Fold(),
		norm.NFC,
		&folding.Whitespace{},
	)
}
