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
	"cmp"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-flictionary/internal/index"
	"github.com/ianlewis/go-flictionary/trie"
)

var (
	errBadExtension = errors.New("bad extension")
	errFold         = errors.New("folding")
)

// dictExts are the supported file extensions in lower case.
var dictExts = []string{".flict", ".flict.gz", ".flict.dz"}

// foldedWord is an order 1 word along with its folded form.
type foldedWord struct {
	folded string
	node   *trie.Node
}

func (w *foldedWord) String() string {
	return w.folded
}

// Dictionary is a decoded Flictionary dictionary. A Dictionary is immutable
// and safe for concurrent use.
type Dictionary struct {
	path   string
	header *trie.Header
	root   *trie.Node

	// words are the order 1 words in file order.
	words []*foldedWord

	// index is sorted by the folded word value and holds only non-filler
	// words.
	index *index.Index[*foldedWord]

	wordCount int

	foldTransformer func() transform.Transformer
}

// New decodes a dictionary from b. Decoding errors wrap a *trie.ParseError.
func New(b []byte, options *Options) (*Dictionary, error) {
	if options == nil {
		options = DefaultOptions
	}

	d := &Dictionary{
		foldTransformer: DefaultOptions.Folder,
	}
	if options.Folder != nil {
		d.foldTransformer = options.Folder
	}

	header, root, err := trie.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decoding dictionary: %w", err)
	}
	d.header = header
	d.root = root

	var indexed []*foldedWord
	for _, n := range root.Children {
		if n.Order != 1 {
			continue
		}
		folded, err := d.fold(n.Word)
		if err != nil {
			return nil, err
		}
		w := &foldedWord{
			folded: folded,
			node:   n,
		}
		d.words = append(d.words, w)
		if !n.IsFiller() {
			indexed = append(indexed, w)
		}
	}
	d.wordCount = len(indexed)
	d.index = index.NewIndex(indexed, strings.Compare)

	return d, nil
}

// Open opens a dictionary file. Files with a .gz extension are read with
// gzip and files with a .dz extension are read with dictzip.
func Open(path string, options *Options) (*Dictionary, error) {
	if !isDictPath(path) {
		return nil, fmt.Errorf("%w: %q", errBadExtension, filepath.Base(path))
	}

	b, err := readDictFile(path)
	if err != nil {
		return nil, err
	}

	d, err := New(b, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	d.path = path
	return d, nil
}

// OpenAll opens all dictionaries under a directory. This function will return
// all successfully opened dictionaries along with any errors that occurred.
func OpenAll(path string, options *Options) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && isDictPath(info.Name()) {
			d, err := Open(path, options)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, d)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

func isDictPath(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range dictExts {
		if strings.HasSuffix(name, ext) && len(name) > len(ext) {
			return true
		}
	}
	return false
}

func readDictFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader for %q: %w", path, err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating dictzip reader for %q: %w", path, err)
		}
		defer z.Close()
		// The uncompressed size is not known up front. ReadAt reports
		// io.EOF at the end of the data.
		r = io.NewSectionReader(z, 0, math.MaxInt64)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return b, nil
}

func (d *Dictionary) fold(s string) (string, error) {
	folded, _, err := transform.String(d.foldTransformer(), s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", errFold, s, err)
	}
	return folded, nil
}

// Path returns the file path the dictionary was opened from. It is empty for
// dictionaries created with New.
func (d *Dictionary) Path() string {
	return d.path
}

// Header returns the dictionary header.
func (d *Dictionary) Header() trie.Header {
	return *d.header
}

// Version returns the dictionary format version.
func (d *Dictionary) Version() int {
	return d.header.Version
}

// Timestamp returns the dictionary creation time.
func (d *Dictionary) Timestamp() time.Time {
	return d.header.Time()
}

// Payload returns the header metadata.
func (d *Dictionary) Payload() string {
	return d.header.Payload
}

// WordCount returns the number of order 1 words that are not fillers.
func (d *Dictionary) WordCount() int {
	return d.wordCount
}

// Root returns the root node of the prefix tree. The tree must not be
// modified.
func (d *Dictionary) Root() *trie.Node {
	return d.root
}

// Walk calls fn for every node in the prefix tree except the root, in
// depth-first order. depth is 1 for the root's children.
func (d *Dictionary) Walk(fn func(node *trie.Node, depth int) bool) {
	for _, c := range d.root.Children {
		c.Walk(func(n *trie.Node, depth int) bool {
			return fn(n, depth+1)
		})
	}
}

// Predict returns up to maxCount words that complete the current token,
// ordered by frequency with the most frequent first. A word completes the
// token if it starts with the token's text and the rest of the word consists
// only of letters. Only order 1 words with a positive frequency are
// suggested. Words are considered in file order and the scan stops once
// maxCount matches are found. preceding is currently unused.
func (d *Dictionary) Predict(preceding []Token, current *Token, maxCount int) []WeightedToken {
	_ = preceding

	if current == nil || current.Data == "" || maxCount <= 0 {
		return nil
	}
	prefix, err := d.fold(current.Data)
	if err != nil || prefix == "" {
		return nil
	}

	var result []WeightedToken
	for _, w := range d.words {
		if len(result) >= maxCount {
			break
		}
		if w.node.Frequency <= 0 {
			continue
		}
		if !completes(w.folded, prefix) {
			continue
		}
		result = append(result, WeightedToken{
			Word:      w.node.Word,
			Frequency: w.node.Frequency,
		})
	}

	slices.SortStableFunc(result, func(a, b WeightedToken) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
	return result
}

// completes reports whether word is prefix followed by zero or more letters.
func completes(word, prefix string) bool {
	rest, ok := strings.CutPrefix(word, prefix)
	if !ok {
		return false
	}
	for len(rest) > 0 {
		r, size := utf8.DecodeRuneInString(rest)
		if r == utf8.RuneError && size <= 1 {
			return false
		}
		if !unicode.IsLetter(r) {
			return false
		}
		rest = rest[size:]
	}
	return true
}

// Lookup returns the order 1 words that match word exactly after folding.
// Filler nodes are never returned.
func (d *Dictionary) Lookup(word string) []WeightedToken {
	folded, err := d.fold(word)
	if err != nil {
		return nil
	}

	var result []WeightedToken
	for _, w := range d.index.Search(folded) {
		result = append(result, WeightedToken{
			Word:      w.node.Word,
			Frequency: w.node.Frequency,
		})
	}
	return result
}
