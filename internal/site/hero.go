package site

import (
	"context"

	"github.com/phonefixpro/site/internal/content"
)

// Hero is the banner at the top of the home page.
type Hero struct {
	Business content.Business
	ImageURL string
}

func (Hero) Templates(_ context.Context) []string {
	return []string{"hero.html.tmpl"}
}
