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
	"rivaas.dev/router"

	"rivaas.dev/resource/session"
)

// Context carries the per-request triad (application handle, host context,
// session) plus the merged argument mapping into a handler. The host
// *router.Context is embedded, so handlers use its accessors and writers
// directly: c.Request, c.Param, c.JSON, c.String, c.Status, and so on.
//
// A Context is created per dispatch and must not be retained after the
// handler returns.
type Context struct {
	*router.Context

	app     *App
	session *session.Session
	args    map[string]any
}

// App returns the application handle the route was registered with.
func (c *Context) App() *App {
	return c.app
}

// Session returns the request's session, or nil when sessions are disabled
// via WithoutSessions. Mutations are persisted to the App's store after the
// handler returns.
func (c *Context) Session() *session.Session {
	return c.session
}

// Args returns the merged argument mapping: URL variable bindings, overlaid
// with parsed request arguments when the App dispatches with parsing.
// Parsed values win on key collision. The map is owned by the handler and
// may be mutated freely.
func (c *Context) Args() map[string]any {
	return c.args
}

// Arg returns the merged argument for name, or nil when absent.
func (c *Context) Arg(name string) any {
	return c.args[name]
}
