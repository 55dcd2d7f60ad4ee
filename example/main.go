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

// Package main demonstrates type-per-route registration with request
// parsing and sessions.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"rivaas.dev/router"

	"rivaas.dev/resource"
	"rivaas.dev/resource/args"
)

// Splash serves the landing page.
type Splash struct{}

func (Splash) Routes() resource.RouteTable {
	return resource.RouteTable{
		{Path: "/", Name: "index"},
	}
}

func (Splash) Handlers() resource.HandlerMap {
	return resource.HandlerMap{
		resource.MethodGet: func(c *resource.Context) {
			c.String(http.StatusOK, "<h1>Splash Page</h1>")
		},
	}
}

// Teams echoes the merged argument mapping. The query string can override
// the URL binding, and "alias" shows how absent optional arguments surface
// as explicit nulls.
type Teams struct{}

func (Teams) Routes() resource.RouteTable {
	return resource.RouteTable{
		{
			Path:    "/team/:team_name",
			Name:    "team",
			Methods: []resource.Method{resource.MethodGet, resource.MethodPost, resource.MethodDelete},
		},
	}
}

func (Teams) Handlers() resource.HandlerMap {
	echo := func(c *resource.Context) {
		c.JSON(http.StatusOK, c.Args())
	}
	return resource.HandlerMap{
		resource.MethodGet:    echo,
		resource.MethodPost:   echo,
		resource.MethodDelete: echo,
	}
}

func (Teams) Parser() *args.Parser {
	return args.New().
		String("team_name").
		String("alias")
}

// Counter tracks visits per client in the session.
type Counter struct{}

func (Counter) Routes() resource.RouteTable {
	return resource.RouteTable{
		{Path: "/visits", Name: "visits"},
	}
}

func (Counter) Handlers() resource.HandlerMap {
	return resource.HandlerMap{
		resource.MethodGet: func(c *resource.Context) {
			n, _ := c.Session().Get("visits", 0).(int)
			c.Session().Set("visits", n+1)
			c.JSON(http.StatusOK, map[string]any{"visits": n + 1})
		},
	}
}

func main() {
	r := router.MustNew()
	app := resource.MustNew(r,
		resource.WithParsing(),
		resource.WithLogger(slog.Default()),
	)

	for _, result := range app.Register(Splash{}, Teams{}, Counter{}) {
		if result.Err != nil {
			slog.Warn("route skipped", "path", result.Path, "error", result.Err)
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	logger.Info("🚀 Server starting on http://localhost:8080")
	logger.Print("")
	logger.Print("📝 Available endpoints:")
	logger.Print("  GET    /                 - Splash page")
	logger.Print("  GET    /team/:team_name  - Echo merged arguments")
	logger.Print("  POST   /team/:team_name  - Echo parsed body arguments")
	logger.Print("  DELETE /team/:team_name  - Echo URL binding only")
	logger.Print("  GET    /visits           - Session-backed visit counter")
	logger.Print("")
	logger.Print("📋 Example commands:")
	logger.Print("  curl http://localhost:8080/")
	logger.Print("  curl 'http://localhost:8080/team/FC%20Barcelona?team_name=FC+Milan'")
	logger.Print("  curl -X POST -H 'Content-Type: application/json' \\")
	logger.Print("       -d '{\"alias\": \"blaugrana\"}' http://localhost:8080/team/Barcelona")
	logger.Print("  curl -i -X PATCH http://localhost:8080/  # 405 with Allow header")
	logger.Print("  curl -c jar -b jar http://localhost:8080/visits")
	logger.Print("")

	logger.Fatal(http.ListenAndServe(":8080", r))
}
