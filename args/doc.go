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

// Package args parses declared request arguments into a typed key-value
// mapping.
//
// A Parser is a set of argument declarations (name, type, required flag,
// optional default) built fluently:
//
//	parser := args.New().
//	    String("name", args.Required()).
//	    Int("age", args.Required()).
//	    String("alias")
//
// Parse reads the request's query string for GET requests and the request
// body for POST, PUT, and PATCH requests, selecting the codec by the
// Content-Type header: JSON, form data (urlencoded and multipart), YAML,
// TOML, and MessagePack bodies are supported. Values are coerced to the
// declared types, so a JSON body {"age": "10"} yields an int 10 for an
// Int-declared argument.
//
// Failure modes are typed, not sniffed from messages:
//
//   - ErrUnsupportedContentType: the body's content type has no codec
//   - *ValidationError: one or more declared arguments are missing,
//     uncoercible, or the body is malformed; carries per-field detail
//   - ErrNilRequest: Parse was invoked without a request, which indicates
//     a programming error rather than bad input
//
// Optional arguments that are absent from the input appear in the result
// with a nil value, so the caller can distinguish "not sent" from "not
// declared".
package args
