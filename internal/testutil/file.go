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

package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// WriteDictOptions are options for WriteTempDict.
type WriteDictOptions struct {
	// Ext is the file extension. Defaults to '.flict.dz' if DictZip is true,
	// '.flict.gz' if Gzip is true and '.flict' otherwise.
	Ext string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool

	// Gzip indicates that the file should be compressed with gzip.
	Gzip bool
}

// GetExt returns the file extension.
func (o *WriteDictOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".flict.dz"
		}
		if o.Gzip {
			return ".flict.gz"
		}
	}
	return ".flict"
}

// WriteTempDict writes b to a dictionary file named name in dir and returns
// the file path.
func WriteTempDict(t *testing.T, dir, name string, b []byte, opts *WriteDictOptions) string {
	t.Helper()
	if opts == nil {
		opts = &WriteDictOptions{}
	}

	path := filepath.Join(dir, name+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(b); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
