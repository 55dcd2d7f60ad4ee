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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/router"
)

// traced wraps a dispatch entry point with an OpenTelemetry span. The span
// carries the request verb, the route pattern, and the implementing
// resource's name. Panics (the propagation path for parser context errors)
// are recorded on the span and re-raised for the host's fault handling.
func (a *App) traced(e *entry, next router.HandlerFunc) router.HandlerFunc {
	return func(c *router.Context) {
		ctx, span := a.tracer.Start(c.Request.Context(), "resource.dispatch",
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", e.route.Path),
				attribute.String("rivaas.resource", e.name),
			),
		)
		c.Request = c.Request.WithContext(ctx)

		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				} else {
					span.SetStatus(codes.Error, fmt.Sprint(r))
				}
				span.End()
				panic(r)
			}
			span.End()
		}()

		next(c)
	}
}
