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
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ManagerOptions are options for a Manager.
type ManagerOptions struct {
	// Options are the options used to decode dictionaries.
	Options *Options

	// Logger receives debug logs about cache activity. Nothing is logged if
	// Logger is nil.
	Logger *slog.Logger
}

// Manager caches decoded dictionaries by key. Concurrent requests for the
// same key share a single decode. Failed decodes are not cached. A Manager is
// safe for concurrent use.
type Manager struct {
	opts   *Options
	logger *slog.Logger

	group singleflight.Group

	mu    sync.RWMutex
	dicts map[string]*Dictionary
}

// NewManager returns a new empty Manager.
func NewManager(opts *ManagerOptions) *Manager {
	if opts == nil {
		opts = &ManagerOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		opts:   opts.Options,
		logger: logger,
		dicts:  map[string]*Dictionary{},
	}
}

// Get returns the dictionary cached under key. If there is none, load is
// called to get the dictionary's bytes, which are then decoded and cached.
func (m *Manager) Get(key string, load func() ([]byte, error)) (*Dictionary, error) {
	return m.get(key, func() (*Dictionary, error) {
		b, err := load()
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", key, err)
		}
		return New(b, m.opts)
	})
}

// Open returns the dictionary at path, opening it with Open if it is not yet
// cached. Dictionaries are cached by their cleaned path.
func (m *Manager) Open(path string) (*Dictionary, error) {
	key := filepath.Clean(path)
	return m.get(key, func() (*Dictionary, error) {
		return Open(key, m.opts)
	})
}

func (m *Manager) get(key string, open func() (*Dictionary, error)) (*Dictionary, error) {
	if d := m.lookup(key); d != nil {
		m.logger.Debug("dictionary cache hit", "key", key)
		return d, nil
	}

	v, err, shared := m.group.Do(key, func() (any, error) {
		// Another caller may have finished loading since the lookup above.
		if d := m.lookup(key); d != nil {
			return d, nil
		}

		m.logger.Debug("decoding dictionary", "key", key)
		d, err := open()
		if err != nil {
			m.logger.Debug("decoding dictionary failed", "key", key, "err", err)
			return nil, err
		}

		m.mu.Lock()
		m.dicts[key] = d
		m.mu.Unlock()

		m.logger.Debug("dictionary cached", "key", key, "words", d.WordCount())
		return d, nil
	})
	if err != nil {
		//nolint:wrapcheck // error is wrapped by open.
		return nil, err
	}
	if shared {
		m.logger.Debug("dictionary decode shared", "key", key)
	}

	//nolint:forcetypeassert // only *Dictionary values are returned above.
	return v.(*Dictionary), nil
}

func (m *Manager) lookup(key string) *Dictionary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dicts[key]
}

// Forget removes the dictionary cached under key.
func (m *Manager) Forget(key string) {
	m.mu.Lock()
	delete(m.dicts, key)
	m.mu.Unlock()
	m.group.Forget(key)
}

// Keys returns the cached keys in sorted order.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.dicts))
	for k := range m.dicts {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// Len returns the number of cached dictionaries.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.dicts)
}
