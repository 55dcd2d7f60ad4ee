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

import (
	"fmt"
	"net/http"
	"net/url"
)

// Parser holds a set of argument declarations. Build one fluently with
// [New] and the typed declaration methods, then call [Parser.Parse] per
// request.
//
// A Parser is immutable after construction and safe for concurrent use by
// multiple goroutines; declare it once per route type, not per request.
//
// Example:
//
//	parser := args.New().
//	    String("name", args.Required()).
//	    Int("age", args.Required())
//
//	parsed, err := parser.Parse(r)
type Parser struct {
	args    []Argument
	declErr error
}

// New creates an empty Parser.
func New() *Parser {
	return &Parser{}
}

// Add declares an argument with the given name and target type.
// Declaration problems (empty or duplicate names) are deferred and
// reported by the first Parse call.
func (p *Parser) Add(name string, t Type, opts ...ArgOption) *Parser {
	if p.declErr == nil {
		if name == "" {
			p.declErr = ErrEmptyArgumentName
		} else if p.declared(name) {
			p.declErr = fmt.Errorf("%w: %q", ErrDuplicateArgument, name)
		}
	}

	arg := Argument{name: name, typ: t}
	for _, opt := range opts {
		opt(&arg)
	}
	p.args = append(p.args, arg)
	return p
}

// String declares a string argument.
func (p *Parser) String(name string, opts ...ArgOption) *Parser {
	return p.Add(name, TypeString, opts...)
}

// Int declares an int argument.
func (p *Parser) Int(name string, opts ...ArgOption) *Parser {
	return p.Add(name, TypeInt, opts...)
}

// Float declares a float64 argument.
func (p *Parser) Float(name string, opts ...ArgOption) *Parser {
	return p.Add(name, TypeFloat, opts...)
}

// Bool declares a bool argument.
func (p *Parser) Bool(name string, opts ...ArgOption) *Parser {
	return p.Add(name, TypeBool, opts...)
}

// declared reports whether name is already declared.
func (p *Parser) declared(name string) bool {
	for i := range p.args {
		if p.args[i].name == name {
			return true
		}
	}
	return false
}

// Parse reads the declared arguments from the request and returns them as
// a typed mapping.
//
// The source is the query string for GET requests and the body for POST,
// PUT, and PATCH requests, decoded by Content-Type (see package doc). For
// any other method the query string is used.
//
// The result contains every declared argument: coerced values for present
// input, defaults where declared, and nil for absent optional arguments.
// Undeclared input keys are ignored.
//
// Errors: ErrNilRequest for a nil request, ErrUnsupportedContentType for a
// body with no codec, and *ValidationError for missing required arguments,
// coercion failures, or a malformed body.
func (p *Parser) Parse(r *http.Request) (map[string]any, error) {
	if r == nil {
		return nil, ErrNilRequest
	}
	if p.declErr != nil {
		return nil, p.declErr
	}

	src, err := p.source(r)
	if err != nil {
		return nil, err
	}
	return p.parseFrom(src)
}

// ParseFrom reads the declared arguments from a custom source.
func (p *Parser) ParseFrom(src ValueGetter) (map[string]any, error) {
	if p.declErr != nil {
		return nil, p.declErr
	}
	return p.parseFrom(src)
}

// parseFrom applies the declarations to a source.
func (p *Parser) parseFrom(src ValueGetter) (map[string]any, error) {
	out := make(map[string]any, len(p.args))
	verr := &ValidationError{}

	for i := range p.args {
		arg := &p.args[i]
		if !src.Has(arg.name) {
			switch {
			case arg.required:
				verr.add(&FieldError{
					Name:   arg.name,
					Reason: "required argument is missing",
				})
			case arg.hasDefault:
				out[arg.name] = arg.def
			default:
				out[arg.name] = nil
			}
			continue
		}

		raw := src.Get(arg.name)
		value, err := convert(raw, arg.typ)
		if err != nil {
			verr.add(&FieldError{
				Name:   arg.name,
				Value:  fmt.Sprint(raw),
				Reason: fmt.Sprintf("cannot convert to %s", arg.typ),
				Err:    err,
			})
			continue
		}
		out[arg.name] = value
	}

	if err := verr.errorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// source selects and decodes the input source for the request.
func (p *Parser) source(r *http.Request) (ValueGetter, error) {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return p.bodySource(r)
	default:
		var query url.Values
		if r.URL != nil {
			query = r.URL.Query()
		}
		return NewValuesGetter(query), nil
	}
}
