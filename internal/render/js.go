package render

import (
	"context"
	"fmt"
	"html/template"
	"strings"
)

// JSLink is a script loaded through a <script> element with a src
// attribute.
type JSLink struct {
	// Src is the URL of the script.
	Src string

	// Defer adds the defer attribute to the <script> element.
	Defer bool

	// PlaceInFooter renders the script as part of .FooterJS instead of
	// .HeaderJS.
	PlaceInFooter bool
}

func (link JSLink) html() string {
	var out strings.Builder
	out.WriteString(`<script src="`)
	out.WriteString(template.HTMLEscapeString(link.Src))
	out.WriteString(`"`)
	if link.Defer {
		out.WriteString(" defer")
	}
	out.WriteString("></script>\n")
	return out.String()
}

// JSInline is a template whose output is embedded in the page inside a
// <script> element. The template is executed with the same data as the page.
type JSInline struct {
	// TemplatePath is the path of the template within the Site's
	// TemplateDir.
	TemplatePath string

	// PlaceInFooter renders the script as part of .FooterJS instead of
	// .HeaderJS.
	PlaceInFooter bool
}

// JSLinker is an interface that Components can fulfill to include scripts
// loaded separately from the HTML document.
type JSLinker interface {
	LinkJS(context.Context) []JSLink
}

// JSEmbedder is an interface that Components can fulfill to include
// JavaScript embedded directly in the rendered HTML.
type JSEmbedder interface {
	EmbedJS(context.Context) []JSInline
}

// renderJS collects the JavaScript of every component, split into what goes
// in the page header and what goes in the footer. Order follows the
// components; repeats are dropped.
func renderJS(ctx context.Context, site Site, funcs template.FuncMap, components []Component, data any) (header, footer template.HTML, err error) {
	var head, foot strings.Builder
	seenLinks := map[string]struct{}{}
	seenInlines := map[string]struct{}{}
	for _, comp := range components {
		if linker, ok := comp.(JSLinker); ok {
			for _, link := range linker.LinkJS(ctx) {
				if _, ok := seenLinks[link.Src]; ok {
					continue
				}
				seenLinks[link.Src] = struct{}{}
				if link.PlaceInFooter {
					foot.WriteString(link.html())
				} else {
					head.WriteString(link.html())
				}
			}
		}
		if embedder, ok := comp.(JSEmbedder); ok {
			for _, inline := range embedder.EmbedJS(ctx) {
				if _, ok := seenInlines[inline.TemplatePath]; ok {
					continue
				}
				seenInlines[inline.TemplatePath] = struct{}{}
				block, err := inlineResource(ctx, site, funcs, "script", inline.TemplatePath, data)
				if err != nil {
					return "", "", fmt.Errorf("error embedding JavaScript for %T: %w", comp, err)
				}
				if inline.PlaceInFooter {
					foot.WriteString(block)
				} else {
					head.WriteString(block)
				}
			}
		}
	}
	return template.HTML(head.String()), template.HTML(foot.String()), nil // #nosec G203
}
