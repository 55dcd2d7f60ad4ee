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

// Package resource provides declarative, type-per-route routing on top of
// rivaas.dev/router.
//
// A resource is a stateless type owning a route table and an explicit map
// from HTTP verb to handler function. An App registers every route-table
// entry with the host router, installing a single dispatch entry point per
// path: the entry point selects the handler for the request's verb, answers
// 405 Method Not Allowed when the resource does not implement it, and hands
// the handler the request context triad (application handle, host context,
// session) plus the URL variable bindings as an argument mapping.
//
// Registration is best-effort: a bad route-table entry (an empty path, a
// reserved handler, a duplicate, an unknown verb, a pattern the host router
// refuses) is reported and logged but never prevents registration of the
// remaining entries.
//
//	r := router.MustNew()
//	app := resource.MustNew(r)
//	app.Register(&Splash{}, &Teams{})
//	http.ListenAndServe(":8080", r)
//
// # Request parsing
//
// With the WithParsing option, resources that implement ParserProvider get
// their declared-argument parser (package args) run for GET, POST, and PUT
// requests before dispatch. Parsed arguments are merged over the URL
// variable bindings, with parsed values winning on key collision. Parser
// failures map to responses by kind: an unsupported body content type is
// 415, a validation failure is 400, and anything else indicates misuse
// rather than bad input and propagates to the host's fault handling.
//
// # Sessions
//
// Each dispatch carries a session (package session) resolved from a cookie
// against the App's store; mutations are persisted after the handler
// returns. Sessions default to an in-memory store and can be disabled with
// WithoutSessions.
package resource
