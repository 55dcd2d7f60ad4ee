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

import "errors"

// ErrNotFound is returned by Store.Get when no session exists for the ID.
var ErrNotFound = errors.New("session not found")

// Store persists session attributes by ID.
//
// Implementations must be safe for concurrent use: every in-flight request
// may hit the store.
type Store interface {
	// Get returns the stored attributes for the ID, or ErrNotFound.
	Get(id string) (map[string]any, error)

	// Save stores the attributes under the ID, replacing any previous
	// state.
	Save(id string, attrs map[string]any) error

	// Delete removes the session. Deleting an unknown ID is not an error.
	Delete(id string) error

	// Close releases the store's resources.
	Close() error
}
