// Package icon resolves the symbolic icon names used by content records to
// SVG glyphs.
//
// Lookups are exact: no case folding, no fuzzy matching, no fallback glyph.
// A name the catalog doesn't know is not an error; callers render nothing
// in its place.
package icon

import (
	"html/template"
	"slices"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Glyph is a renderable icon from the catalog.
type Glyph struct {
	name   string
	shapes []g.Node
}

// Name returns the catalog name the glyph was found under.
func (gl Glyph) Name() string {
	return gl.name
}

// Node returns the glyph as an <svg> element carrying class.
func (gl Glyph) Node(class string) g.Node {
	return h.SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", "24"),
		g.Attr("height", "24"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.If(class != "", h.Class(class)),
		g.Attr("data-icon", gl.name),
		g.Attr("aria-hidden", "true"),
		g.Group(gl.shapes),
	)
}

// HTML renders the glyph as SVG markup carrying class.
func (gl Glyph) HTML(class string) template.HTML {
	var out strings.Builder
	// writes to a strings.Builder can't fail, and every node in the
	// catalog is a plain element or attribute
	_ = gl.Node(class).Render(&out)
	return template.HTML(out.String()) // #nosec G203
}

// Lookup returns the glyph registered under name. The second result is false
// if there is none.
func Lookup(name string) (Glyph, bool) {
	shapes, ok := catalog[name]
	if !ok {
		return Glyph{}, false
	}
	return Glyph{name: name, shapes: shapes}, true
}

// Render returns the markup for the glyph registered under name, or empty
// markup if there is none.
func Render(name, class string) template.HTML {
	glyph, ok := Lookup(name)
	if !ok {
		return ""
	}
	return glyph.HTML(class)
}

// Names returns every name in the catalog, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
