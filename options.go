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

import (
	"log/slog"

	"rivaas.dev/resource/session"
)

// Option defines functional options for App configuration.
type Option func(*App)

// WithLogger sets the logger used for registration and dispatch reporting.
// The default discards all records, matching the host router's behavior
// when no observability is configured.
//
// Example:
//
//	app := resource.MustNew(r, resource.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithParsing selects the parsing dispatcher: resources implementing
// ParserProvider have their parser run for GET, POST, and PUT requests, and
// parsed arguments are merged over URL variable bindings before the handler
// runs (parsed values win on collision).
//
// Without this option parsers are ignored entirely and dispatch passes URL
// variable bindings through unmodified.
//
// Example:
//
//	app := resource.MustNew(r, resource.WithParsing())
func WithParsing() Option {
	return func(a *App) {
		a.parsing = true
	}
}

// WithTracing enables an OpenTelemetry span per dispatch, recorded through
// the globally registered tracer provider. Only the otel API is used;
// exporters and sampling remain the application's concern.
//
// Example:
//
//	app := resource.MustNew(r, resource.WithTracing())
func WithTracing() Option {
	return func(a *App) {
		a.tracing = true
	}
}

// WithSessionStore sets the session store. The default is an in-memory
// store, which is suitable for tests and single-process deployments only.
//
// Example:
//
//	app := resource.MustNew(r, resource.WithSessionStore(store))
func WithSessionStore(store session.Store) Option {
	return func(a *App) {
		a.store = store
	}
}

// WithSessionCookie sets the name of the cookie carrying the session ID.
// Default: "rv_session".
func WithSessionCookie(name string) Option {
	return func(a *App) {
		a.cookie = name
	}
}

// WithoutSessions disables session handling. Context.Session returns nil
// for every dispatch.
func WithoutSessions() Option {
	return func(a *App) {
		a.store = nil
	}
}
