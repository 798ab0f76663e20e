package http

import (
	"html/template"
	"net/http"
)

// The gateway hosts only two server-rendered pages: the admin login form and
// the admin console shell. Everything else on the admin surface is the SPA
// talking to /api/admin.

var loginPageTmpl = template.Must(template.New("login").Parse(`<!doctype html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Entrar</title></head>
<body>
<form method="post" action="/api/auth/login" id="login-form">
  <h1>Painel administrativo</h1>
  <label>Usuário <input name="username" autocomplete="username"></label>
  <label>Senha <input name="password" type="password" autocomplete="current-password"></label>
  <button type="submit">Entrar</button>
</form>
</body>
</html>`))

var adminPageTmpl = template.Must(template.New("admin").Parse(`<!doctype html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Painel</title></head>
<body>
<div id="root" data-app="admin"></div>
<script src="/static/admin.js"></script>
</body>
</html>`))

// LoginPageHandler serves GET /admin/login.
func LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = loginPageTmpl.Execute(w, nil)
	}
}

// AdminPageHandler serves the admin console shell for GET /admin and every
// page under it. The route guard has already vetted the session.
func AdminPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = adminPageTmpl.Execute(w, nil)
	}
}
