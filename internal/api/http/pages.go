package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageIndex     = "index.html"
	pageGabarito  = "gabarito.html"
	pageResultado = "resultado.html"
	pageAdmin     = "admin_notas.html"
)

var funcs = template.FuncMap{
	"pct":   formatPercentage,
	"stamp": func(t time.Time) string { return t.Local().Format("02/01/2006 15:04:05") },
}

// Pages holds the parsed HTML templates, one set per page.
type Pages struct {
	byName map[string]*template.Template
}

func LoadPages() (*Pages, error) {
	p := &Pages{byName: map[string]*template.Template{}}
	for _, name := range []string{pageIndex, pageGabarito, pageResultado, pageAdmin} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("pages: parse %s: %w", name, err)
		}
		p.byName[name] = t
	}
	return p, nil
}

// render writes the page only if the template executed cleanly.
func (p *Pages) render(w http.ResponseWriter, status int, name string, data any) error {
	t, ok := p.byName[name]
	if !ok {
		return fmt.Errorf("pages: unknown page %s", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("pages: render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func formatPercentage(v float64) string { return fmt.Sprintf("%.2f%%", v) }
