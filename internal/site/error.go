package site

import "context"

// ErrorPage is shown when a page can't be rendered. It uses no other
// components and no site data.
type ErrorPage struct{}

func (ErrorPage) Templates(_ context.Context) []string {
	return []string{"error.html.tmpl"}
}

func (ErrorPage) Key(_ context.Context) string {
	return "error"
}

func (ErrorPage) ExecutedTemplate(_ context.Context) string {
	return "error.html.tmpl"
}
