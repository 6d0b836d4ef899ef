package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"premier-properties/internal/utils"

	"github.com/gin-gonic/gin/render"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer is a gin HTMLRender that minifies every page it writes.
type Renderer struct {
	templates *template.Template
	minifier  *minify.M
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, utils.WrapError(err, "failed to parse templates")
	}

	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("text/javascript", js.Minify)

	return &Renderer{templates: tmpl, minifier: m}, nil
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	return minifiedHTML{renderer: r, name: name, data: data}
}

// Execute renders name into a byte slice, minified.
func (r *Renderer) Execute(name string, data any) ([]byte, error) {
	var raw bytes.Buffer
	if err := r.templates.ExecuteTemplate(&raw, name, data); err != nil {
		return nil, utils.WrapError(err, "failed to execute template %s", name)
	}
	var out bytes.Buffer
	if err := r.minifier.Minify("text/html", &out, &raw); err != nil {
		return nil, utils.WrapError(err, "failed to minify %s", name)
	}
	return out.Bytes(), nil
}

type minifiedHTML struct {
	renderer *Renderer
	name     string
	data     any
}

var htmlContentType = []string{"text/html; charset=utf-8"}

func (m minifiedHTML) Render(w http.ResponseWriter) error {
	m.WriteContentType(w)
	body, err := m.renderer.Execute(m.name, m.data)
	if err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

func (m minifiedHTML) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
