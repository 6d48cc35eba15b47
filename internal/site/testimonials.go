package site

import (
	"context"

	"github.com/phonefixpro/site/internal/content"
	"github.com/phonefixpro/site/internal/fragment"
)

// Testimonials is the row of customer reviews.
type Testimonials struct {
	Items []content.Testimonial
}

func (Testimonials) Templates(_ context.Context) []string {
	return []string{"testimonials.html.tmpl"}
}

// TestimonialCard is what one testimonial renders with.
type TestimonialCard struct {
	Name     string
	Content  string
	ImageURL string
	Rating   int
}

// Stars has one element per star the card shows: Rating of them, or none if
// Rating isn't positive.
func (c TestimonialCard) Stars() []struct{} {
	return make([]struct{}, max(c.Rating, 0))
}

// Cards returns one card per testimonial, in order, keyed by testimonial ID.
func (t Testimonials) Cards() []fragment.Fragment[TestimonialCard] {
	return fragment.Project(t.Items, func(rec content.Testimonial) TestimonialCard {
		return TestimonialCard{
			Name:     rec.Name,
			Content:  rec.Content,
			ImageURL: rec.ImageURL,
			Rating:   rec.Rating,
		}
	})
}
