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

import "github.com/google/uuid"

// Session is a per-request bag of attributes identified by an opaque ID.
//
// A Session is not safe for concurrent use; it belongs to exactly one
// in-flight request. Persistence across requests goes through a [Store].
type Session struct {
	id    string
	attrs map[string]any
	dirty bool
}

// New creates an empty session with a fresh random ID.
func New() *Session {
	return &Session{
		id:    uuid.NewString(),
		attrs: make(map[string]any),
	}
}

// Restore rebuilds a session from previously stored attributes. The
// restored session is clean: it is not written back unless mutated.
func Restore(id string, attrs map[string]any) *Session {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	return &Session{id: id, attrs: attrs}
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// Has reports whether the attribute is set.
func (s *Session) Has(name string) bool {
	_, ok := s.attrs[name]
	return ok
}

// Get returns the attribute's value, or fallback when unset.
func (s *Session) Get(name string, fallback any) any {
	value, ok := s.attrs[name]
	if !ok {
		return fallback
	}
	return value
}

// Set stores an attribute and marks the session dirty.
func (s *Session) Set(name string, value any) {
	s.attrs[name] = value
	s.dirty = true
}

// Remove deletes an attribute. Removing an unset attribute is a no-op and
// does not mark the session dirty.
func (s *Session) Remove(name string) {
	if _, ok := s.attrs[name]; !ok {
		return
	}
	delete(s.attrs, name)
	s.dirty = true
}

// Clear removes every attribute and marks the session dirty.
func (s *Session) Clear() {
	s.attrs = make(map[string]any)
	s.dirty = true
}

// All returns a copy of the attributes.
func (s *Session) All() map[string]any {
	out := make(map[string]any, len(s.attrs))
	for k, v := range s.attrs {
		out[k] = v
	}
	return out
}

// Dirty reports whether the session has been mutated since creation or
// restore. Only dirty sessions are worth persisting.
func (s *Session) Dirty() bool {
	return s.dirty
}
