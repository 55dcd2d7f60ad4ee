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

// Package session provides cookie-backed per-client state for resource
// handlers.
//
// A [Session] is a mutable attribute bag scoped to one in-flight request;
// a [Store] persists attribute snapshots between requests, keyed by the
// session ID carried in a cookie. Sessions track their own dirty state, so
// a request that only reads never touches the store on the way out.
//
// [MemoryStore] is the built-in store. Production deployments with more
// than one instance should implement [Store] over shared storage.
package session
