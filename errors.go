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

package resource

import "errors"

var (
	// ErrNilRouter indicates that the App was constructed without a host router.
	ErrNilRouter = errors.New("host router is nil")

	// ErrEmptyPath indicates a route-table entry with an empty path.
	ErrEmptyPath = errors.New("route path is empty")

	// ErrHandlerReserved indicates a route-table entry that carries its own
	// handler. The registry owns the dispatch entry point for every route.
	ErrHandlerReserved = errors.New("route options must not carry a handler")

	// ErrUnknownMethod indicates a verb outside the closed enumeration.
	ErrUnknownMethod = errors.New("unknown HTTP method")

	// ErrDuplicatePath indicates that a path is already registered with the App.
	ErrDuplicatePath = errors.New("path already registered")

	// ErrSessionCookieEmpty indicates an empty session cookie name.
	ErrSessionCookieEmpty = errors.New("session cookie name is empty")
)
