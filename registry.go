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
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/router"

	"rivaas.dev/resource/args"
	"rivaas.dev/resource/session"
)

// tracerName identifies this instrumentation scope.
const tracerName = "rivaas.dev/resource"

// defaultSessionCookie is the cookie carrying the session ID.
const defaultSessionCookie = "rv_session"

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// App is the registry: it maps paths to their implementing resources and
// registers a dispatch entry point for each route-table entry with the host
// router.
//
// Registration is a startup-time, single-goroutine concern. Once Register
// has returned, the App is read-only and safe for concurrent dispatch.
//
// Example:
//
//	r := router.MustNew()
//	app := resource.MustNew(r, resource.WithParsing())
//	for _, result := range app.Register(&Splash{}, &Teams{}) {
//	    if result.Err != nil {
//	        slog.Warn("route skipped", "path", result.Path, "error", result.Err)
//	    }
//	}
//	http.ListenAndServe(":8080", r)
type App struct {
	router  *router.Router
	logger  *slog.Logger
	store   session.Store
	cookie  string
	parsing bool
	tracing bool
	tracer  trace.Tracer

	entries map[string]*entry
	results []Result
}

// entry is the registered state for one route-table entry: the resolved
// handler map, the parser (when parsing is enabled and the resource
// provides one), and the parameter names of the path pattern.
type entry struct {
	res      Resource
	route    Route
	name     string
	params   []string
	handlers HandlerMap
	allowed  map[Method]bool
	parser   *args.Parser
}

// Result is the outcome of registering one route-table entry. Failures are
// isolated per entry: a non-nil Err never prevents registration of the
// remaining entries.
type Result struct {
	// Resource is the implementing type's name, e.g. "*routes.Splash".
	Resource string

	// Path is the entry's URL pattern.
	Path string

	// Name is the entry's endpoint name (the path when unset).
	Name string

	// Err is the registration failure, or nil.
	Err error
}

// New creates an App bound to the given host router.
//
// Returns an error if the configuration is invalid. For a version that
// panics instead, use MustNew.
func New(r *router.Router, opts ...Option) (*App, error) {
	if r == nil {
		return nil, ErrNilRouter
	}

	a := &App{
		router:  r,
		logger:  noopLogger,
		store:   session.NewMemoryStore(),
		cookie:  defaultSessionCookie,
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.cookie == "" {
		return nil, ErrSessionCookieEmpty
	}
	if a.tracing {
		a.tracer = otel.Tracer(tracerName)
	}

	return a, nil
}

// MustNew creates an App and panics if the configuration is invalid.
func MustNew(r *router.Router, opts ...Option) *App {
	a, err := New(r, opts...)
	if err != nil {
		panic(fmt.Sprintf("resource.MustNew: %v", err))
	}
	return a
}

// Router returns the host router the App registers with.
func (a *App) Router() *router.Router {
	return a.router
}

// Resource returns the resource registered for path, if any.
func (a *App) Resource(path string) (Resource, bool) {
	e, ok := a.entries[path]
	if !ok {
		return nil, false
	}
	return e.res, true
}

// Results returns the accumulated registration outcomes of every Register
// call, in registration order.
func (a *App) Results() []Result {
	out := make([]Result, len(a.results))
	copy(out, a.results)
	return out
}

// Register registers every route-table entry of every resource with the
// host router, installing the App's dispatch entry point as the handler.
//
// Registration failures are isolated per entry: each failure is logged at
// warning level with the offending path and the cause, reported in the
// returned results, and never stops the pass. Register does not return an
// error and does not panic on bad entries.
func (a *App) Register(resources ...Resource) []Result {
	var results []Result
	for _, res := range resources {
		name := fmt.Sprintf("%T", res)
		table := res.Routes()
		if len(table) == 0 {
			a.logger.Debug("resource has no routes", "resource", name)
			continue
		}
		for _, rt := range table {
			result := Result{
				Resource: name,
				Path:     rt.Path,
				Name:     rt.Name,
				Err:      a.register(res, rt),
			}
			if result.Name == "" {
				result.Name = rt.Path
			}
			if result.Err != nil {
				a.logger.Warn("failed to register route",
					"path", rt.Path,
					"resource", name,
					"error", result.Err,
				)
			} else {
				a.logger.Debug("registered route",
					"path", rt.Path,
					"resource", name,
					"methods", methodStrings(a.entries[rt.Path].route.Methods),
				)
			}
			results = append(results, result)
		}
	}
	a.results = append(a.results, results...)
	return results
}

// register validates and registers a single route-table entry. A panic from
// the host router's registration call is captured as the entry's error so
// one bad pattern cannot abort the pass.
func (a *App) register(res Resource, rt Route) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("host registration failed for %q: %v", rt.Path, r)
		}
	}()

	if rt.Path == "" {
		return ErrEmptyPath
	}
	if rt.Handler != nil {
		return fmt.Errorf("%w: route %q", ErrHandlerReserved, rt.Path)
	}
	if _, exists := a.entries[rt.Path]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePath, rt.Path)
	}
	if len(rt.Methods) == 0 {
		rt.Methods = []Method{MethodGet}
	}
	allowed := make(map[Method]bool, len(rt.Methods))
	for _, m := range rt.Methods {
		if !m.Valid() {
			return fmt.Errorf("%w: %q on route %q", ErrUnknownMethod, string(m), rt.Path)
		}
		allowed[m] = true
	}

	e := &entry{
		res:      res,
		route:    rt,
		name:     fmt.Sprintf("%T", res),
		params:   paramNames(rt.Path),
		handlers: res.Handlers(),
		allowed:  allowed,
	}
	if a.parsing {
		if pp, ok := res.(ParserProvider); ok {
			e.parser = pp.Parser()
		}
	}

	dispatch := a.dispatchFor(e)
	reject := a.rejectFor(e)
	for _, m := range allMethods {
		if allowed[m] {
			a.handle(m, rt.Path, dispatch)
		} else {
			a.handle(m, rt.Path, reject)
		}
	}

	a.entries[rt.Path] = e
	return nil
}

// handle registers one verb with the host router. Every verb of the closed
// enumeration gets a handler for every registered path, so verbs outside a
// route's method list answer 405 rather than the host's 404.
func (a *App) handle(m Method, path string, h router.HandlerFunc) {
	switch m {
	case MethodGet:
		a.router.GET(path, h)
	case MethodPost:
		a.router.POST(path, h)
	case MethodPut:
		a.router.PUT(path, h)
	case MethodDelete:
		a.router.DELETE(path, h)
	case MethodPatch:
		a.router.PATCH(path, h)
	case MethodHead:
		a.router.HEAD(path, h)
	case MethodOptions:
		a.router.OPTIONS(path, h)
	}
}

// methodStrings converts a method list for structured logging.
func methodStrings(methods []Method) []string {
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = string(m)
	}
	return out
}
