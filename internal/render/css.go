package render

import (
	"context"
	"fmt"
	"html/template"
	"strings"
)

// CSSLink is a stylesheet loaded through a <link> element.
type CSSLink struct {
	// Href is the URL of the stylesheet.
	Href string

	// Media is an optional media query the stylesheet applies to.
	Media string
}

func (link CSSLink) html() string {
	var out strings.Builder
	out.WriteString(`<link rel="stylesheet" href="`)
	out.WriteString(template.HTMLEscapeString(link.Href))
	out.WriteString(`"`)
	if link.Media != "" {
		out.WriteString(` media="`)
		out.WriteString(template.HTMLEscapeString(link.Media))
		out.WriteString(`"`)
	}
	out.WriteString(">\n")
	return out.String()
}

// CSSInline is a template whose output is embedded in the page inside a
// <style> element. The template is executed with the same data as the page.
type CSSInline struct {
	// TemplatePath is the path of the template within the Site's
	// TemplateDir.
	TemplatePath string
}

// CSSLinker is an interface that Components can fulfill to include
// stylesheets that should be loaded through <link> elements. They are made
// available to the template as part of .CSS.
type CSSLinker interface {
	LinkCSS(context.Context) []CSSLink
}

// CSSEmbedder is an interface that Components can fulfill to include CSS
// that should be embedded directly in the rendered HTML. It is made
// available to the template as part of .CSS.
type CSSEmbedder interface {
	EmbedCSS(context.Context) []CSSInline
}

// renderCSS collects the CSS of every component, in the order the
// components are listed, dropping repeats. Each component's links come
// before its inline blocks.
func renderCSS(ctx context.Context, site Site, funcs template.FuncMap, components []Component, data any) (template.HTML, error) {
	var out strings.Builder
	seenLinks := map[CSSLink]struct{}{}
	seenInlines := map[string]struct{}{}
	for _, comp := range components {
		if linker, ok := comp.(CSSLinker); ok {
			for _, link := range linker.LinkCSS(ctx) {
				if _, ok := seenLinks[link]; ok {
					continue
				}
				seenLinks[link] = struct{}{}
				out.WriteString(link.html())
			}
		}
		if embedder, ok := comp.(CSSEmbedder); ok {
			for _, inline := range embedder.EmbedCSS(ctx) {
				if _, ok := seenInlines[inline.TemplatePath]; ok {
					continue
				}
				seenInlines[inline.TemplatePath] = struct{}{}
				block, err := inlineResource(ctx, site, funcs, "style", inline.TemplatePath, data)
				if err != nil {
					return "", fmt.Errorf("error embedding CSS for %T: %w", comp, err)
				}
				out.WriteString(block)
			}
		}
	}
	return template.HTML(out.String()), nil // #nosec G203
}
