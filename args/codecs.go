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
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// defaultMaxMultipartMemory bounds the in-memory portion of multipart
// parsing (10 MiB). Overall body size limits are the host router's concern.
const defaultMaxMultipartMemory = 10 << 20

// bodySource decodes the request body by Content-Type into a source.
// An empty body decodes as an empty source, so required-argument reporting
// stays uniform with a present-but-empty body.
func (p *Parser) bodySource(r *http.Request) (ValueGetter, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, r.Header.Get("Content-Type"))
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, malformed(err)
		}
		return NewValuesGetter(r.PostForm), nil

	case mediaType == "multipart/form-data":
		if err := r.ParseMultipartForm(defaultMaxMultipartMemory); err != nil {
			return nil, malformed(err)
		}
		return NewValuesGetter(r.PostForm), nil

	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return decodeBody(r.Body, json.Unmarshal)

	case mediaType == "application/yaml" || mediaType == "application/x-yaml" || mediaType == "text/yaml":
		return decodeBody(r.Body, yaml.Unmarshal)

	case mediaType == "application/toml":
		return decodeBody(r.Body, toml.Unmarshal)

	case mediaType == "application/msgpack" || mediaType == "application/x-msgpack":
		return decodeBody(r.Body, msgpack.Unmarshal)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, mediaType)
	}
}

// decodeBody reads the full body and unmarshals it into a map source.
func decodeBody(body io.Reader, unmarshal func([]byte, any) error) (ValueGetter, error) {
	if body == nil {
		return NewMapGetter(nil), nil
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, malformed(err)
	}
	if len(data) == 0 {
		return NewMapGetter(nil), nil
	}

	var values map[string]any
	if err := unmarshal(data, &values); err != nil {
		return nil, malformed(err)
	}
	return NewMapGetter(values), nil
}

// malformed wraps a body decoding failure as a validation error, so the
// caller's three-way outcome split (unsupported type / invalid input /
// programming error) stays intact.
func malformed(err error) error {
	return &ValidationError{Fields: []*FieldError{{
		Name:   "body",
		Reason: "malformed request body",
		Err:    fmt.Errorf("%w: %v", ErrMalformedBody, err),
	}}}
}
