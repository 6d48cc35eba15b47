package site

import (
	"context"

	"github.com/phonefixpro/site/internal/content"
)

// Header is the top bar: logo, section navigation and a chat button.
type Header struct {
	Business content.Business
	Links    []NavLink
}

func (Header) Templates(_ context.Context) []string {
	return []string{"header.html.tmpl"}
}
