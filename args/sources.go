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

package args

import "net/url"

// ValueGetter abstracts the input source a parse reads from.
//
// Implementers must distinguish between "key present with empty value" and
// "key not present": a query string "?name=" has the key with an empty
// value, while "?foo=bar" does not have it at all. The distinction drives
// required/default/optional handling.
//
// Built-in sources cover query strings, form data, and decoded body maps.
// Use [Parser.ParseFrom] to parse from a custom implementation.
type ValueGetter interface {
	// Get returns the value for the key. The result is meaningful only
	// when Has reports true.
	Get(key string) any

	// Has reports whether the key is present, even with an empty value.
	Has(key string) bool
}

// ValuesGetter implements [ValueGetter] over url.Values, serving both query
// strings and form data.
type ValuesGetter struct {
	values url.Values
}

// NewValuesGetter creates a [ValuesGetter].
//
// Example:
//
//	getter := args.NewValuesGetter(r.URL.Query())
//	parsed, err := parser.ParseFrom(getter)
func NewValuesGetter(v url.Values) *ValuesGetter {
	return &ValuesGetter{values: v}
}

// Get returns the first value for the key.
func (g *ValuesGetter) Get(key string) any {
	return g.values.Get(key)
}

// Has reports whether the key exists.
func (g *ValuesGetter) Has(key string) bool {
	return g.values.Has(key)
}

// MapGetter implements [ValueGetter] over a decoded body map.
type MapGetter struct {
	values map[string]any
}

// NewMapGetter creates a [MapGetter].
func NewMapGetter(m map[string]any) *MapGetter {
	return &MapGetter{values: m}
}

// Get returns the value for the key.
func (g *MapGetter) Get(key string) any {
	return g.values[key]
}

// Has reports whether the key exists.
func (g *MapGetter) Has(key string) bool {
	_, ok := g.values[key]
	return ok
}
