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
	"errors"
	"net/http"
	"strings"

	"rivaas.dev/router"

	"rivaas.dev/resource/args"
)

// errorCode and errorDetails match the rivaas.dev/errors response
// interfaces, so typed errors can enrich the JSON error body.
type errorCode interface{ Code() string }

type errorDetails interface{ Details() any }

// dispatchFor selects the dispatch entry point for an entry. The parsing
// dispatcher is chosen at construction time via WithParsing; tracing wraps
// either implementation when enabled.
func (a *App) dispatchFor(e *entry) router.HandlerFunc {
	var h router.HandlerFunc
	if a.parsing {
		h = a.parsingDispatch(e)
	} else {
		h = a.plainDispatch(e)
	}
	if a.tracing {
		h = a.traced(e, h)
	}
	return h
}

// plainDispatch forwards to the verb handler with the URL variable bindings
// as the argument mapping.
func (a *App) plainDispatch(e *entry) router.HandlerFunc {
	return func(c *router.Context) {
		a.dispatch(c, e, a.urlArgs(c, e))
	}
}

// parsingDispatch runs the resource's parser before dispatch for GET, POST,
// and PUT requests, merging parsed arguments over the URL variable bindings.
// Parsed values win on key collision. Parser outcomes map to responses as:
//
//   - args.ErrUnsupportedContentType → 415, stop
//   - *args.ValidationError          → its HTTPStatus (400), stop
//   - any other error                → propagated (panic) to the host's
//     fault handling; it indicates misuse rather than bad input
func (a *App) parsingDispatch(e *entry) router.HandlerFunc {
	return func(c *router.Context) {
		kwargs := a.urlArgs(c, e)
		if e.parser != nil && parsedMethod(c.Request.Method) {
			parsed, err := e.parser.Parse(c.Request)
			if err != nil {
				var verr *args.ValidationError
				switch {
				case errors.Is(err, args.ErrUnsupportedContentType):
					a.fail(c, http.StatusUnsupportedMediaType, err)
				case errors.As(err, &verr):
					a.fail(c, verr.HTTPStatus(), err)
				default:
					panic(err)
				}
				return
			}
			for k, v := range parsed {
				kwargs[k] = v
			}
		}
		a.dispatch(c, e, kwargs)
	}
}

// dispatch resolves the verb handler and invokes it. A verb without a
// handler in the resource's map answers 405, which also covers verbs that
// are listed in the route's method list but left unimplemented.
func (a *App) dispatch(c *router.Context, e *entry, kwargs map[string]any) {
	h, ok := e.handlers[Method(c.Request.Method)]
	if !ok {
		a.reject(c, e)
		return
	}

	sess := a.openSession(c)
	ctx := &Context{
		Context: c,
		app:     a,
		session: sess,
		args:    kwargs,
	}
	h(ctx)
	a.closeSession(sess)
}

// urlArgs builds the URL variable bindings for the matched route.
func (a *App) urlArgs(c *router.Context, e *entry) map[string]any {
	kwargs := make(map[string]any, len(e.params))
	for _, name := range e.params {
		kwargs[name] = c.Param(name)
	}
	return kwargs
}

// parsedMethod reports whether the parser engages for the request method.
func parsedMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodPost || method == http.MethodPut
}

// rejectFor returns the 405 handler registered for verbs outside a route's
// method list.
func (a *App) rejectFor(e *entry) router.HandlerFunc {
	return func(c *router.Context) {
		a.reject(c, e)
	}
}

// reject answers 405 with an Allow header listing the route's method list.
func (a *App) reject(c *router.Context, e *entry) {
	c.Response.Header().Set("Allow", strings.Join(methodStrings(e.route.Methods), ", "))
	c.JSON(http.StatusMethodNotAllowed, map[string]any{
		"error": "method not allowed",
	})
}

// fail writes a JSON error response. Typed errors contribute their code and
// details to the body.
func (a *App) fail(c *router.Context, status int, err error) {
	body := map[string]any{
		"error": err.Error(),
	}
	var coded errorCode
	if errors.As(err, &coded) {
		body["code"] = coded.Code()
	}
	var detailed errorDetails
	if errors.As(err, &detailed) {
		body["details"] = detailed.Details()
	}
	c.JSON(status, body)
}
