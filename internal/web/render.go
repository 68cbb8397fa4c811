package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutName = "layout"

var sanitizer = bluemonday.UGCPolicy()

var templateFuncs = template.FuncMap{
	"markdown": markdown,
	"date":     formatDate,
	"selected": selected,
	"media":    mediaURL,
	"profile":  profileURL,
	"postURL":  postURL,
}

// Renderer executes page templates inside the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	layout := path.Join("templates", layoutName+".html")
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")
		if name == layoutName {
			continue
		}

		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templatesFS, layout, page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return t.ExecuteTemplate(w, layoutName, data)
}

// markdown renders user text to sanitized HTML.
func markdown(text string) template.HTML {
	unsafe := blackfriday.Run([]byte(text))
	return template.HTML(sanitizer.SanitizeBytes(unsafe))
}

func formatDate(t time.Time) string {
	return t.Format("2 January 2006, 15:04")
}

func selected(id int, ref *int) bool {
	return ref != nil && *ref == id
}

func mediaURL(name *string) string {
	if name == nil {
		return ""
	}
	return "/media/" + *name
}
