// Package render provides the HTML rendering framework the site is built on,
// layered over the html/template package.
//
// render is organized around Components and Pages. A Component is some piece
// of the HTML document that needs to be included in a page's output: the
// services grid, the gallery, the footer. A Page is a Component that gets
// rendered itself rather than being included in another Component. The home
// page is a Page; the header is a Component, as is the base layout every
// page shares.
//
// Each server has one Site, which provides the fs.FS containing the templates
// Components use. The Site is available at render time as .Site, so it can
// hold configuration used across all pages, like the business's contact
// details. The Page being rendered is available as .Page.
//
// Components are usually structs holding whatever data their templates need.
// When a Component relies on another Component, the home page including the
// header for example, make the dependency a property of the outer struct and
// return it from UseComponents. Its templates, FuncMap, CSS, and JavaScript
// then get included whenever the outer Component is rendered.
package render
