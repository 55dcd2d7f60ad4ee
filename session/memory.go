// Copyright 2025 The Rivaas Authors
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

package session

import "sync"

// MemoryStore is an in-process [Store]. State is lost on restart, so it
// suits single-instance deployments, development, and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]any
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]any),
	}
}

// Get returns a copy of the stored attributes for the ID.
func (m *MemoryStore) Get(id string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	attrs, ok := m.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out, nil
}

// Save stores a copy of the attributes under the ID.
func (m *MemoryStore) Save(id string, attrs map[string]any) error {
	stored := make(map[string]any, len(attrs))
	for k, v := range attrs {
		stored[k] = v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = stored
	return nil
}

// Delete removes the session.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
