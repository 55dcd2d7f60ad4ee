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
	"net/http"
	"strings"

	"rivaas.dev/router"

	"rivaas.dev/resource/args"
)

// Method is an HTTP verb from the closed enumeration supported by this
// package. Using a dedicated type keeps route tables and handler maps
// restricted to verbs the dispatcher knows how to register.
type Method string

// The closed verb enumeration. Values match net/http method constants.
const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodDelete  Method = http.MethodDelete
	MethodPatch   Method = http.MethodPatch
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
)

// allMethods is the registration order for the closed enumeration.
var allMethods = [...]Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
}

// Methods returns the closed verb enumeration.
// The returned slice is a copy and may be modified by the caller.
func Methods() []Method {
	out := make([]Method, len(allMethods))
	copy(out, allMethods[:])
	return out
}

// Valid reports whether m belongs to the closed verb enumeration.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead, MethodOptions:
		return true
	}
	return false
}

// Handler is a per-verb handler function. Handlers receive the request
// context triad (application handle, host context, session) together with
// the merged argument mapping through *Context, and respond using the host
// context's writers (String, JSON, Status, ...).
type Handler func(*Context)

// HandlerMap maps verbs to handler functions. An absent entry is the
// fallback: the dispatcher answers 405 Method Not Allowed for any verb a
// resource does not implement, so a resource only lists the verbs it
// actually handles.
type HandlerMap map[Method]Handler

// Route is a single route-table entry: a URL path pattern plus the options
// passed to the host router when the entry is registered.
//
// Path uses the host router's pattern syntax, e.g. "/teams/:team_name".
//
// Handler is reserved. The registry installs its own dispatch entry point
// for every route, so an entry that carries a handler of its own fails
// registration with ErrHandlerReserved. The field exists only so that the
// conflict is expressible and caught, mirroring the guard the registry
// enforces.
type Route struct {
	// Path is the URL pattern registered with the host router.
	Path string

	// Name is an optional endpoint name, used for logging and registry
	// lookups. Defaults to the path when empty.
	Name string

	// Methods lists the verbs the route accepts. Empty defaults to {GET}.
	// Verbs outside this list answer 405 Method Not Allowed.
	Methods []Method

	// Handler must be nil. See the type comment.
	Handler router.HandlerFunc
}

// RouteTable is the ordered collection of routes a resource owns.
// It is defined at type-definition time and registered once per App.
type RouteTable []Route

// Resource is a stateless unit owning a route table and a verb→handler map.
// Implementations must be safe for concurrent dispatch; the registry
// constructs nothing per request beyond the transient argument mapping, so
// a Resource must carry no mutable state of its own.
//
// Example:
//
//	type Splash struct{}
//
//	func (Splash) Routes() resource.RouteTable {
//	    return resource.RouteTable{
//	        {Path: "/", Name: "index", Methods: []resource.Method{resource.MethodGet}},
//	    }
//	}
//
//	func (Splash) Handlers() resource.HandlerMap {
//	    return resource.HandlerMap{
//	        resource.MethodGet: func(c *resource.Context) {
//	            c.String(http.StatusOK, "<h1>Splash Page</h1>")
//	        },
//	    }
//	}
type Resource interface {
	// Routes returns the resource's route table.
	Routes() RouteTable

	// Handlers returns the verb→handler mapping. It is consulted once at
	// registration time.
	Handlers() HandlerMap
}

// ParserProvider is the optional capability a resource implements to opt
// into request parsing. The parser only runs when the App was built with
// WithParsing; otherwise the capability is ignored and dispatch behaves as
// if the resource had never declared it.
type ParserProvider interface {
	// Parser returns the declared-argument parser for the resource's
	// routes, or nil to disable parsing for this resource.
	Parser() *args.Parser
}

// paramNames extracts the parameter names from a host route pattern.
// Both ":name" and "*name" segments bind a URL variable.
func paramNames(path string) []string {
	var names []string
	for _, seg := range strings.Split(path, "/") {
		if len(seg) > 1 && (seg[0] == ':' || seg[0] == '*') {
			names = append(names, seg[1:])
		}
	}
	return names
}
