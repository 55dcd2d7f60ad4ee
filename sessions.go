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

	"rivaas.dev/router"

	"rivaas.dev/resource/session"
)

// openSession loads the request's session from the store, or starts a fresh
// one. The cookie for a fresh session is set before the handler runs so it
// reaches the client ahead of any body write. Returns (nil, false) when
// sessions are disabled.
func (a *App) openSession(c *router.Context) *session.Session {
	if a.store == nil {
		return nil
	}

	if ck, err := c.Request.Cookie(a.cookie); err == nil && ck.Value != "" {
		attrs, err := a.store.Get(ck.Value)
		if err == nil {
			return session.Restore(ck.Value, attrs)
		}
		// Unknown or expired ID: fall through to a fresh session.
	}

	sess := session.New()
	http.SetCookie(c.Response, &http.Cookie{
		Name:     a.cookie,
		Value:    sess.ID(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// closeSession persists the session after the handler returns. Sessions
// that were never written are not stored.
func (a *App) closeSession(sess *session.Session) {
	if sess == nil || a.store == nil {
		return
	}
	if !sess.Dirty() {
		return
	}
	if err := a.store.Save(sess.ID(), sess.All()); err != nil {
		a.logger.Warn("failed to save session", "session_id", sess.ID(), "error", err)
	}
}
