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

package flictionary_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-flictionary"
	"github.com/ianlewis/go-flictionary/internal/testutil"
	"github.com/ianlewis/go-flictionary/trie"
)

func TestManager_Get(t *testing.T) {
	t.Parallel()

	b := testutil.MakeDictionary(1, "en", []*testutil.Word{{Word: "hi", Frequency: 5}})

	var loads atomic.Int32
	load := func() ([]byte, error) {
		loads.Add(1)
		return b, nil
	}

	m := flictionary.NewManager(nil)

	var wg sync.WaitGroup
	dicts := make([]*flictionary.Dictionary, 8)
	for i := range dicts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := m.Get("en", load)
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			dicts[i] = d
		}()
	}
	wg.Wait()

	if diff := cmp.Diff(int32(1), loads.Load()); diff != "" {
		t.Errorf("loads (-want, +got):\n%s", diff)
	}
	for _, d := range dicts {
		if d != dicts[0] {
			t.Fatal("Get: want the same dictionary for every caller")
		}
	}
	if diff := cmp.Diff([]string{"en"}, m.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}

	m.Forget("en")
	if diff := cmp.Diff(0, m.Len()); diff != "" {
		t.Errorf("Len (-want, +got):\n%s", diff)
	}
	if _, err := m.Get("en", load); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(int32(2), loads.Load()); diff != "" {
		t.Errorf("loads after Forget (-want, +got):\n%s", diff)
	}
}

func TestManager_errorsNotCached(t *testing.T) {
	t.Parallel()

	m := flictionary.NewManager(nil)

	errLoad := errors.New("load failed")
	if _, err := m.Get("k", func() ([]byte, error) { return nil, errLoad }); !errors.Is(err, errLoad) {
		t.Fatalf("Get: want %v, got %v", errLoad, err)
	}
	if _, err := m.Get("k", func() ([]byte, error) { return []byte{0x80}, nil }); !errors.Is(err, trie.ErrParse) {
		t.Fatalf("Get: want %v, got %v", trie.ErrParse, err)
	}
	if diff := cmp.Diff(0, m.Len()); diff != "" {
		t.Fatalf("Len (-want, +got):\n%s", diff)
	}

	b := testutil.MakeDictionary(1, "", nil)
	if _, err := m.Get("k", func() ([]byte, error) { return b, nil }); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(1, m.Len()); diff != "" {
		t.Fatalf("Len (-want, +got):\n%s", diff)
	}
}

func TestManager_Open(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := testutil.MakeDictionary(1, "", []*testutil.Word{{Word: "hi", Frequency: 5}})
	path := testutil.WriteTempDict(t, dir, "en", b, &testutil.WriteDictOptions{DictZip: true})

	m := flictionary.NewManager(&flictionary.ManagerOptions{
		Options: &flictionary.Options{Folder: flictionary.DefaultFolder},
	})
	d1, err := m.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	d2, err := m.Open(dir + "/./en.flict.dz")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if d1 != d2 {
		t.Fatal("Open: want cached dictionary for the same path")
	}

	// The manager's options apply to opened dictionaries.
	got := d1.Predict(nil, &flictionary.Token{Data: "HI"}, 1)
	if diff := cmp.Diff([]flictionary.WeightedToken{{Word: "hi", Frequency: 5}}, got); diff != "" {
		t.Fatalf("Predict (-want, +got):\n%s", diff)
	}
}
