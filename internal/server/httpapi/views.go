package httpapi

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed web/register.html
var webFS embed.FS

// usersPageTemplate mirrors the listing markup the service has always
// served: one "name - email" line per user plus a link to the form.
var usersPageTemplate = template.Must(template.New("users").Parse(`<h1>Registered Users</h1>
<ul>
{{- range . }}
<li>{{ .fullName }} - {{ .email }}</li>
{{- end }}
</ul>
<a href="/register">Register New User</a>
`))

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	page, err := webFS.ReadFile("web/register.html")
	if err != nil {
		http.Error(w, "registration form unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (h *Handler) usersPage(w http.ResponseWriter, r *http.Request) {
	collection := h.repo.List(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := usersPageTemplate.Execute(w, collection); err != nil {
		h.logger.Error(r.Context(), "rendering users page failed", "error", err)
	}
}
