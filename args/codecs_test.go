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
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func postRequest(t *testing.T, contentType, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return req
}

func TestBodySource_JSON(t *testing.T) {
	parser := New().String("name").Int("age")

	tests := []struct {
		name        string
		contentType string
	}{
		{name: "plain", contentType: "application/json"},
		{name: "with charset", contentType: "application/json; charset=utf-8"},
		{name: "suffix", contentType: "application/vnd.acme+json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parser.Parse(postRequest(t, tt.contentType,
				`{"name": "Ada", "age": 36}`))
			require.NoError(t, err)
			assert.Equal(t, "Ada", parsed["name"])
			assert.Equal(t, 36, parsed["age"])
		})
	}
}

func TestBodySource_YAML(t *testing.T) {
	parser := New().String("name").Int("age")

	parsed, err := parser.Parse(postRequest(t, "application/yaml",
		"name: Ada\nage: 36\n"))

	require.NoError(t, err)
	assert.Equal(t, "Ada", parsed["name"])
	assert.Equal(t, 36, parsed["age"])
}

func TestBodySource_TOML(t *testing.T) {
	parser := New().String("name").Int("age")

	parsed, err := parser.Parse(postRequest(t, "application/toml",
		"name = \"Ada\"\nage = 36\n"))

	require.NoError(t, err)
	assert.Equal(t, "Ada", parsed["name"])
	assert.Equal(t, 36, parsed["age"])
}

func TestBodySource_MessagePack(t *testing.T) {
	parser := New().String("name").Int("age")

	raw, err := msgpack.Marshal(map[string]any{"name": "Ada", "age": 36})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/msgpack")
	parsed, err := parser.Parse(req)

	require.NoError(t, err)
	assert.Equal(t, "Ada", parsed["name"])
	assert.Equal(t, 36, parsed["age"])
}

func TestBodySource_Multipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Ada"))
	require.NoError(t, mw.WriteField("age", "36"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	parser := New().String("name").Int("age")
	parsed, err := parser.Parse(req)

	require.NoError(t, err)
	assert.Equal(t, "Ada", parsed["name"])
	assert.Equal(t, 36, parsed["age"])
}

func TestBodySource_EmptyBody(t *testing.T) {
	parser := New().String("name", Default("anon"))

	parsed, err := parser.Parse(postRequest(t, "application/json", ""))

	require.NoError(t, err)
	assert.Equal(t, "anon", parsed["name"])
}

func TestBodySource_UnsupportedContentType(t *testing.T) {
	parser := New().String("name")

	tests := []struct {
		name        string
		contentType string
	}{
		{name: "xml", contentType: "application/xml"},
		{name: "plain text", contentType: "text/plain"},
		{name: "missing header", contentType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(postRequest(t, tt.contentType, "payload"))
			assert.ErrorIs(t, err, ErrUnsupportedContentType)
		})
	}
}

func TestBodySource_MalformedBody(t *testing.T) {
	parser := New().String("name")

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{name: "truncated json", contentType: "application/json", body: `{"name": `},
		{name: "json scalar", contentType: "application/json", body: `42`},
		{name: "bad toml", contentType: "application/toml", body: `name = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(postRequest(t, tt.contentType, tt.body))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, "body", verr.Fields[0].Name)
			assert.ErrorIs(t, verr.Fields[0].Err, ErrMalformedBody)
		})
	}
}
