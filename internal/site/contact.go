package site

import (
	"context"

	"github.com/phonefixpro/site/internal/content"
	"github.com/phonefixpro/site/internal/render"
)

// Contact is the contact details panel and the map beside it.
type Contact struct {
	Business content.Business
	Map      Map
}

func (Contact) Templates(_ context.Context) []string {
	return []string{"contact.html.tmpl"}
}

func (c Contact) UseComponents(_ context.Context) []render.Component {
	return []render.Component{
		c.Map,
	}
}

// Map is an embedded map of the shop's location.
type Map struct {
	Business content.Business
}

func (Map) Templates(_ context.Context) []string {
	return []string{"map.html.tmpl"}
}

// EmbedURL is the iframe source of the map.
func (m Map) EmbedURL() string {
	return m.Business.MapEmbedURL()
}
