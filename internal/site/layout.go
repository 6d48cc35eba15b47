package site

import (
	"context"

	"github.com/phonefixpro/site/internal/render"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

// Layout is the HTML document shell every page fills in.
type Layout struct{}

func (l Layout) Templates(_ context.Context) []string {
	return []string{l.BaseTemplate()}
}

// BaseTemplate is the template pages execute to render the full document.
func (Layout) BaseTemplate() string {
	return "layout.html.tmpl"
}

func (Layout) LinkJS(_ context.Context) []render.JSLink {
	return []render.JSLink{
		{Src: tailwindCDN},
	}
}

func (Layout) EmbedCSS(_ context.Context) []render.CSSInline {
	return []render.CSSInline{
		{TemplatePath: "site.css.tmpl"},
	}
}
