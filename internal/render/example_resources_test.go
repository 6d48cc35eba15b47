package render_test

import (
	"context"
	"os"

	"github.com/phonefixpro/site/internal/render"
)

type ResourcesSite struct {
	*render.CachedSite

	Title string
}

type ResourcesHomePage struct {
	Layout ResourcesLayout
	Map    ResourcesMap
	Accent string
}

func (ResourcesHomePage) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (page ResourcesHomePage) UseComponents(_ context.Context) []render.Component {
	return []render.Component{
		page.Layout,
		page.Map,
	}
}

func (ResourcesHomePage) Key(_ context.Context) string {
	return "home.html.tmpl"
}

func (page ResourcesHomePage) ExecutedTemplate(_ context.Context) string {
	return page.Layout.BaseTemplate()
}

func (ResourcesHomePage) EmbedCSS(_ context.Context) []render.CSSInline {
	return []render.CSSInline{
		{TemplatePath: "home.css.tmpl"},
	}
}

type ResourcesLayout struct {
	Map ResourcesMap
}

func (layout ResourcesLayout) Templates(_ context.Context) []string {
	return []string{layout.BaseTemplate()}
}

func (ResourcesLayout) BaseTemplate() string {
	return "base.html.tmpl"
}

func (layout ResourcesLayout) UseComponents(_ context.Context) []render.Component {
	return []render.Component{
		layout.Map,
	}
}

func (ResourcesLayout) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{
		{Href: "https://example.com/site.css"},
	}
}

func (ResourcesLayout) LinkJS(_ context.Context) []render.JSLink {
	return []render.JSLink{
		{Src: "https://example.com/site.js"},
		{Src: "https://example.com/analytics.js", Defer: true, PlaceInFooter: true},
	}
}

// ResourcesMap is used by both the layout and the page; its resources
// should only be included once.
type ResourcesMap struct{}

func (ResourcesMap) Templates(_ context.Context) []string {
	return []string{"map.html.tmpl"}
}

func (ResourcesMap) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{
		{Href: "https://example.com/map.css", Media: "screen"},
	}
}

func (ResourcesMap) EmbedJS(_ context.Context) []render.JSInline {
	return []render.JSInline{
		{TemplatePath: "map.js.tmpl", PlaceInFooter: true},
	}
}

func ExampleRender_resources() {
	templates := templateFS(map[string]string{
		"home.html.tmpl": `{{ define "body" }}{{ block "map" . }}{{ end }}{{ end }}`,
		"map.html.tmpl":  `{{ define "map" }}<div id="map"></div>{{ end }}`,
		"base.html.tmpl": `
<!doctype html>
<html lang="en">
	<head>
		<title>{{ .Site.Title }}</title>
		{{- .CSS -}}
		{{- .HeaderJS -}}
	</head>
	<body>
		{{ block "body" . }}{{ end }}
		{{- .FooterJS -}}
	</body>
</html>`,
		"home.css.tmpl": "a { color: {{ .Page.Accent }}; }",
		"map.js.tmpl":   "const mapTitle = {{ .Site.Title }};",
	})

	site := ResourcesSite{
		CachedSite: render.NewCachedSite(templates),
		Title:      "My Example Site",
	}
	page := ResourcesHomePage{
		Layout: ResourcesLayout{},
		Accent: "blue",
	}
	render.Render(context.Background(), os.Stdout, site, page)

	//Output:
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<title>My Example Site</title><style>
	// a { color: blue; }
	// </style>
	// <link rel="stylesheet" href="https://example.com/site.css">
	// <link rel="stylesheet" href="https://example.com/map.css" media="screen">
	// <script src="https://example.com/site.js"></script>
	// </head>
	// 	<body>
	// 		<div id="map"></div><script src="https://example.com/analytics.js" defer></script>
	// <script>
	// const mapTitle = "My Example Site";
	// </script>
	// </body>
	// </html>
}
