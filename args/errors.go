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
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedContentType indicates a request body content type with
	// no registered codec.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrNilRequest indicates that Parse was invoked without a request.
	// This is a programming error, not bad input, and is never converted
	// to an HTTP response by the dispatcher.
	ErrNilRequest = errors.New("parse invoked outside a request")

	// ErrMalformedBody indicates a request body the selected codec could
	// not decode.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrDuplicateArgument indicates two declarations with the same name.
	ErrDuplicateArgument = errors.New("argument already declared")

	// ErrEmptyArgumentName indicates a declaration with an empty name.
	ErrEmptyArgumentName = errors.New("argument name is empty")
)

// FieldError describes one declared argument that failed parsing.
//
// Use [errors.As] to check for FieldError:
//
//	var fieldErr *args.FieldError
//	if errors.As(err, &fieldErr) {
//	    fmt.Printf("argument: %s\n", fieldErr.Name)
//	}
type FieldError struct {
	Name   string `json:"argument"`        // Declared argument name
	Value  string `json:"value,omitempty"` // The input value that failed, if any
	Reason string `json:"reason"`          // Human-readable reason
	Err    error  `json:"-"`               // Underlying error
}

// Error returns a formatted error message.
func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("argument %q: %s (got %q)", e.Name, e.Reason, e.Value)
	}
	return fmt.Sprintf("argument %q: %s", e.Name, e.Reason)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError aggregates the field errors of one parse.
//
// Use [errors.As] to check for ValidationError:
//
//	var verr *args.ValidationError
//	if errors.As(err, &verr) {
//	    for _, fieldErr := range verr.Fields {
//	        // Handle each field
//	    }
//	}
type ValidationError struct {
	Fields []*FieldError
}

// Error returns a formatted error message.
func (v *ValidationError) Error() string {
	switch len(v.Fields) {
	case 0:
		return "no errors"
	case 1:
		return v.Fields[0].Error()
	default:
		return fmt.Sprintf("%d invalid arguments", len(v.Fields))
	}
}

// Unwrap returns all field errors for errors.Is/As compatibility.
func (v *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(v.Fields))
	for _, e := range v.Fields {
		errs = append(errs, e)
	}
	return errs
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (v *ValidationError) HTTPStatus() int {
	return 400 // Bad Request
}

// Code implements rivaas.dev/errors.ErrorCode.
func (v *ValidationError) Code() string {
	return "invalid_arguments"
}

// Details implements rivaas.dev/errors.ErrorDetails.
func (v *ValidationError) Details() any {
	return v.Fields
}

// add appends a field error.
func (v *ValidationError) add(e *FieldError) {
	v.Fields = append(v.Fields, e)
}

// errorOrNil returns nil when no field failed.
func (v *ValidationError) errorOrNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}
