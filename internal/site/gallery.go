package site

import (
	"context"

	"github.com/phonefixpro/site/internal/content"
	"github.com/phonefixpro/site/internal/fragment"
)

// Gallery is the grid of photos of past repairs.
type Gallery struct {
	Items []content.GalleryItem
}

func (Gallery) Templates(_ context.Context) []string {
	return []string{"gallery.html.tmpl"}
}

// GalleryTile is what one gallery item renders with.
type GalleryTile struct {
	ImageURL string
	Title    string
}

// Tiles returns one tile per gallery item, in order, keyed by item ID.
func (g Gallery) Tiles() []fragment.Fragment[GalleryTile] {
	return fragment.Project(g.Items, func(item content.GalleryItem) GalleryTile {
		return GalleryTile{ImageURL: item.ImageURL, Title: item.Title}
	})
}
