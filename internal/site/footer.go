package site

import (
	"context"

	"github.com/phonefixpro/site/internal/content"
)

// Footer is the bottom bar: logo, section navigation and copyright.
type Footer struct {
	Business content.Business
	Links    []NavLink

	// Year is shown in the copyright line.
	Year int
}

func (Footer) Templates(_ context.Context) []string {
	return []string{"footer.html.tmpl"}
}
