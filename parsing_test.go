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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/resource/args"
)

// teams echoes the merged argument mapping and declares optional overrides
// for the team name and an alias.
type teams struct{}

func (teams) Routes() RouteTable {
	return RouteTable{
		{
			Path:    "/team/:team_name",
			Methods: []Method{MethodGet, MethodPost, MethodDelete},
		},
	}
}

func (teams) Handlers() HandlerMap {
	echo := func(c *Context) {
		c.JSON(http.StatusOK, c.Args())
	}
	return HandlerMap{
		MethodGet:    echo,
		MethodPost:   echo,
		MethodDelete: echo,
	}
}

func (teams) Parser() *args.Parser {
	return args.New().
		String("team_name").
		String("alias")
}

// arenas requires a name and a numeric age on create.
type arenas struct{}

func (arenas) Routes() RouteTable {
	return RouteTable{
		{Path: "/arena", Methods: []Method{MethodPost}},
	}
}

func (arenas) Handlers() HandlerMap {
	return HandlerMap{
		MethodPost: func(c *Context) {
			c.JSON(http.StatusCreated, c.Args())
		},
	}
}

func (arenas) Parser() *args.Parser {
	return args.New().
		String("name", args.Required()).
		Int("age", args.Required())
}

// brokenParser declares a duplicate argument; the first parse reports it.
type brokenParser struct{}

func (brokenParser) Routes() RouteTable {
	return RouteTable{
		{Path: "/broken", Methods: []Method{MethodGet}},
	}
}

func (brokenParser) Handlers() HandlerMap {
	return HandlerMap{
		MethodGet: func(c *Context) { c.Status(http.StatusOK) },
	}
}

func (brokenParser) Parser() *args.Parser {
	return args.New().String("x").String("x")
}

func TestParsing_QueryOverridesURLBinding(t *testing.T) {
	app, r := newTestApp(t, WithParsing())
	require.NoError(t, app.Register(teams{})[0].Err)

	w := doRequest(r, httptest.NewRequest(http.MethodGet,
		"/team/FC%20Barcelona?team_name=FC+Milan", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "FC Milan", body["team_name"])

	// Declared but absent arguments surface as explicit nulls.
	require.Contains(t, body, "alias")
	assert.Nil(t, body["alias"])
}

func TestParsing_AbsentDeclaredArgumentOverridesURLBinding(t *testing.T) {
	app, r := newTestApp(t, WithParsing())
	require.NoError(t, app.Register(teams{})[0].Err)

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/team/Ajax?alias=lancers", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)

	// The parser declares team_name, so an absent input still produces the
	// key with a nil value, and parsed values win the merge unconditionally:
	// the URL binding is replaced by the explicit null.
	require.Contains(t, body, "team_name")
	assert.Nil(t, body["team_name"])
	assert.Equal(t, "lancers", body["alias"])
}

func TestParsing_JSONBodyCoercion(t *testing.T) {
	app, r := newTestApp(t, WithParsing())
	require.NoError(t, app.Register(arenas{})[0].Err)

	req := httptest.NewRequest(http.MethodPost, "/arena",
		strings.NewReader(`{"name": "Sports Arena", "age": "10"}`))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(r, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "Sports Arena", body["name"])
	assert.Equal(t, float64(10), body["age"])
}

func TestParsing_FormBody(t *testing.T) {
	app, r := newTestApp(t, WithParsing())
	require.NoError(t, app.Register(arenas{})[0].Err)

	req := httptest.NewRequest(http.MethodPost, "/arena",
		strings.NewReader("name=Sports+Arena&age=10"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := doRequest(r, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "Sports Arena", body["name"])
	assert.Equal(t, float64(10), body["age"])
}

func TestParsing_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "uncoercible age", body: `{"name": "Sports Arena", "age": "invalid"}`},
		{name: "missing required name", body: `{"age": 10}`},
		{name: "malformed body", body: `{"name": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, r := newTestApp(t, WithParsing())
			require.NoError(t, app.Register(arenas{})[0].Err)

			req := httptest.NewRequest(http.MethodPost, "/arena", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := doRequest(r, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeJSON(t, w)
			assert.Equal(t, "invalid_arguments", body["code"])
			assert.NotEmpty(t, body["details"])
		})
	}
}

func TestParsing_UnsupportedContentType(t *testing.T) {
	app, r := newTestApp(t, WithParsing())
	require.NoError(t, app.Register(arenas{})[0].Err)

	req := httptest.NewRequest(http.MethodPost, "/arena",
		strings.NewReader(`<arena><name>Sports Arena</name></arena>`))
	req.Header.Set("Content-Type", "application/xml")
	w := doRequest(r, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Contains(t, decodeJSON(t, w)["error"], "unsupported content type")
}

func TestParsing_DeleteSkipsParser(t *testing.T) {
	app, r := newTestApp(t, WithParsing())
	require.NoError(t, app.Register(teams{})[0].Err)

	// DELETE is outside the parsed verb set: the query string is ignored
	// and only the URL binding reaches the handler.
	w := doRequest(r, httptest.NewRequest(http.MethodDelete,
		"/team/Ajax?team_name=FC+Milan", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "Ajax", body["team_name"])
	assert.NotContains(t, body, "alias")
}

func TestParsing_DisabledIgnoresProvider(t *testing.T) {
	app, r := newTestApp(t)
	require.NoError(t, app.Register(teams{})[0].Err)

	w := doRequest(r, httptest.NewRequest(http.MethodGet,
		"/team/Ajax?team_name=FC+Milan", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "Ajax", body["team_name"])
	assert.NotContains(t, body, "alias")
}

func TestParsing_DeclarationErrorPropagates(t *testing.T) {
	app, r := newTestApp(t, WithParsing())
	require.NoError(t, app.Register(brokenParser{})[0].Err)

	// A declaration error is a programming fault, not bad input; it must
	// reach the host's fault handling rather than turn into a 4xx.
	assert.Panics(t, func() {
		doRequest(r, httptest.NewRequest(http.MethodGet, "/broken", nil))
	})
}
