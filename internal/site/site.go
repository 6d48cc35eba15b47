// Package site assembles the PhoneFixPro home page out of its sections and
// holds the templates they render with.
package site

import (
	"context"
	"embed"
	"html/template"
	"io/fs"

	"github.com/phonefixpro/site/internal/content"
	"github.com/phonefixpro/site/internal/icon"
	"github.com/phonefixpro/site/internal/render"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Templates returns the templates bundled with the binary.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// only fails for an invalid directory name
		panic(err)
	}
	return sub
}

var (
	_ render.Site             = &Site{}
	_ render.FuncMapExtender  = &Site{}
	_ render.ServerErrorPager = &Site{}
)

// Site is the render.Site every page of the shop is rendered with.
type Site struct {
	*render.CachedSite

	// Business is the shop whose details appear on every page.
	Business content.Business
}

// New returns a Site reading templates from templates. Pass Templates() to
// use the bundled ones.
func New(templates fs.FS, business content.Business) *Site {
	return &Site{
		CachedSite: render.NewCachedSite(templates),
		Business:   business,
	}
}

// FuncMap makes the icon catalog available to every template as
// `icon "name" "classes"`.
func (*Site) FuncMap(_ context.Context) template.FuncMap {
	return template.FuncMap{
		"icon": icon.Render,
	}
}

// ServerErrorPage is rendered in place of any page that fails to render.
func (*Site) ServerErrorPage(_ context.Context) render.Page {
	return ErrorPage{}
}

// HomePage returns the home page for s, with year shown in the footer.
func (s *Site) HomePage(year int) HomePage {
	return NewHomePage(s.Business, year)
}
