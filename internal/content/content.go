// Package content holds the site's content tables: the services offered,
// the gallery of past work, and customer testimonials.
//
// The tables are fixed at build time. Accessors return copies, so callers
// can never change what another caller sees.
package content

// Service is a repair service shown in the services grid.
type Service struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	// Icon names a glyph in the icon catalog. A name the catalog doesn't
	// know renders an empty icon slot.
	Icon string `yaml:"icon"`
}

// Key returns the service's ID.
func (s Service) Key() int { return s.ID }

// GalleryItem is a photo of past work shown in the gallery.
type GalleryItem struct {
	ID       int    `yaml:"id"`
	ImageURL string `yaml:"image_url"`
	Title    string `yaml:"title"`
}

// Key returns the gallery item's ID.
func (g GalleryItem) Key() int { return g.ID }

// Testimonial is a customer review.
type Testimonial struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Content string `yaml:"content"`

	// Rating is the number of stars shown, intended to be 1 to 5. It is
	// not checked.
	Rating   int    `yaml:"rating"`
	ImageURL string `yaml:"image_url"`
}

// Key returns the testimonial's ID.
func (t Testimonial) Key() int { return t.ID }
