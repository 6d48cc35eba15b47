package site

import (
	"context"
	"html/template"

	"github.com/phonefixpro/site/internal/content"
	"github.com/phonefixpro/site/internal/fragment"
	"github.com/phonefixpro/site/internal/icon"
)

const serviceIconClass = "h-6 w-6 text-blue-600"

// Services is the grid of repair services.
type Services struct {
	Items []content.Service
}

func (Services) Templates(_ context.Context) []string {
	return []string{"services.html.tmpl"}
}

// ServiceCard is what one service renders with.
type ServiceCard struct {
	Title       string
	Description string

	// Icon is empty when the service's icon isn't in the catalog.
	Icon template.HTML
}

// Cards returns one card per service, in order, keyed by service ID.
func (s Services) Cards() []fragment.Fragment[ServiceCard] {
	return fragment.Project(s.Items, serviceCard)
}

func serviceCard(svc content.Service) ServiceCard {
	card := ServiceCard{
		Title:       svc.Title,
		Description: svc.Description,
	}
	if glyph, ok := icon.Lookup(svc.Icon); ok {
		card.Icon = glyph.HTML(serviceIconClass)
	}
	return card
}
