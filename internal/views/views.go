// Package views holds the HTML pages of the site and a gin renderer for them.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var files embed.FS

// Layout is the outer template every page is rendered through
const Layout = "boilerplate"

// Page names accepted by c.HTML
const (
	Home            = "home"
	CampgroundIndex = "campgrounds/index"
	CampgroundNew   = "campgrounds/new"
	CampgroundShow  = "campgrounds/show"
	CampgroundEdit  = "campgrounds/edit"
	Errors          = "errors"
)

var pages = []string{Home, CampgroundIndex, CampgroundNew, CampgroundShow, CampgroundEdit, Errors}

var shared = []string{
	"templates/layouts.html",
	"templates/partials/navbar.html",
	"templates/partials/footer.html",
	"templates/partials/campground_form.html",
}

var funcs = template.FuncMap{
	"price": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"year":  func() int { return time.Now().Year() },
}

// Renderer keeps one parsed template set per page so each page can define
// its own "title" and "content" blocks
type Renderer struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// New parses every page together with the layout and partials
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		patterns := append(append([]string{}, shared...), "templates/"+page+".html")
		t, err := template.New(page).Funcs(funcs).ParseFS(files, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// MustNew is New for package-level setup; it panics on a broken template
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		// an unknown page renders the error page instead of panicking mid-response
		return render.HTML{
			Template: r.templates[Errors],
			Name:     Layout,
			Data:     map[string]any{"err": map[string]any{"Status": 500, "Message": "unknown view " + name}},
		}
	}
	return render.HTML{Template: t, Name: Layout, Data: data}
}
