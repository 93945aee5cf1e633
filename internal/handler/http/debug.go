// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/web-quiz/internal/app"
	"github.com/MKhiriev/web-quiz/internal/logger"
)

// debugUsername and debugPassword are the only pair /_login knows. The page
// never touches the database or the session.
const (
	debugUsername = "alb"
	debugPassword = "abc"
)

//go:embed templates/*.html
var templatesFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// loginForm handles GET /_login-form.
func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.renderHTML(w, r, "login_form.html", nil)
}

// debugLogin handles POST /_login.
func (h *Handler) debugLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || !r.PostForm.Has("username") || !r.PostForm.Has("password") {
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	h.renderHTML(w, r, "login_result.html", struct {
		Known    bool
		Username string
	}{
		Known:    username == debugUsername && password == debugPassword,
		Username: username,
	})
}

func (h *Handler) renderHTML(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering page")
	}
}
