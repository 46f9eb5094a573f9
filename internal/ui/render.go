package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"coachsite/internal/ctxkeys"
	"coachsite/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages maps a page name to its parsed template set (layout + page)
var pages = map[string]*template.Template{}

var pageNames = []string{
	"home.html",
	"register.html",
	"login.html",
	"life_coaching.html",
	"new_post.html",
	"blog.html",
	"post.html",
	"contact.html",
	"not_found.html",
}

func init() {
	for _, name := range pageNames {
		pages[name] = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
	}
}

// view is passed to every template execution. Data carries the
// page-specific values; the rest comes from the request context.
type view struct {
	AppName   string
	User      *model.User
	CSRFToken string
	Path      string
	Data      any
}

func Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	RenderStatus(w, r, http.StatusOK, name, data)
}

func RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	tmpl, ok := pages[name]
	if !ok {
		slog.Error("render failed", "error", "unknown template", "name", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	v := view{
		User:      ctxkeys.User(ctx),
		CSRFToken: ctxkeys.CSRFToken(ctx),
		Path:      ctxkeys.URLPath(ctx),
		Data:      data,
	}
	if cfg := ctxkeys.Config(ctx); cfg != nil {
		v.AppName = cfg.AppName
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	err := tmpl.ExecuteTemplate(w, "layout.html", v)
	if err != nil {
		slog.Error("render failed", "error", err, "name", name)
	}
}
