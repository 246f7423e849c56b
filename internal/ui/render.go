package ui

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/marjuksajid/SkillChronicle/internal/ctxkeys"
)

//go:embed templates
var templatesFS embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
}

// pages maps a page file name to its template parsed with the layout
var pages map[string]*template.Template

func init() {
	files, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		panic("failed to glob page templates: " + err.Error())
	}

	pages = make(map[string]*template.Template, len(files))
	for _, file := range files {
		t := template.Must(
			template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", file),
		)
		pages[path.Base(file)] = t
	}
}

// View is the handler-supplied portion of a page render.
type View struct {
	Title string
	Error string
	Data  any
}

// renderContext is what templates actually see: the handler's View plus
// request-scoped values pulled from the context.
type renderContext struct {
	View
	AppName   string
	Username  string
	CSRFToken string
	Path      string
}

// Render writes the named page wrapped in the layout. Output is buffered
// so a template failure never leaks a half-written page.
func Render(w http.ResponseWriter, r *http.Request, status int, page string, v View) {
	t, ok := pages[page]
	if !ok {
		slog.Error("render failed: unknown page", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	rc := renderContext{
		View:      v,
		AppName:   "SkillChronicle",
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
		Path:      ctxkeys.URLPath(r.Context()),
	}

	cfg := ctxkeys.Config(r.Context())
	if cfg != nil && cfg.AppName != "" {
		rc.AppName = cfg.AppName
	}

	user := ctxkeys.User(r.Context())
	if user != nil {
		rc.Username = user.Username
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout.html", rc)
	if err != nil {
		slog.Error("render failed", "error", err, "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	if err != nil {
		slog.Error("render write failed", "error", err, "page", page)
	}
}

// RenderError shows the generic error page. Store and render failures end
// up here; the message is always a fixed user-facing string, never error
// text from below.
func RenderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	Render(w, r, status, "error.html", View{
		Title: "Something went wrong",
		Error: message,
	})
}
