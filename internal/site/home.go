package site

import (
	"context"

	"github.com/phonefixpro/site/internal/content"
	"github.com/phonefixpro/site/internal/render"
)

var _ render.Page = HomePage{}

// HomePage is the one-page site: header, hero, services, gallery,
// testimonials, contact and footer, always in that order.
type HomePage struct {
	Layout       Layout
	Header       Header
	Hero         Hero
	Services     Services
	Gallery      Gallery
	Testimonials Testimonials
	Contact      Contact
	Footer       Footer
}

// NewHomePage builds the home page from the shipped content tables.
func NewHomePage(business content.Business, year int) HomePage {
	return HomePage{
		Header:       Header{Business: business, Links: NavLinks},
		Hero:         Hero{Business: business, ImageURL: content.HeroImageURL},
		Services:     Services{Items: content.Services()},
		Gallery:      Gallery{Items: content.Gallery()},
		Testimonials: Testimonials{Items: content.Testimonials()},
		Contact:      Contact{Business: business, Map: Map{Business: business}},
		Footer:       Footer{Business: business, Links: NavLinks, Year: year},
	}
}

func (HomePage) Templates(_ context.Context) []string {
	return []string{"home.html.tmpl"}
}

func (p HomePage) UseComponents(_ context.Context) []render.Component {
	return []render.Component{
		p.Layout,
		p.Header,
		p.Hero,
		p.Services,
		p.Gallery,
		p.Testimonials,
		p.Contact,
		p.Footer,
	}
}

func (HomePage) Key(_ context.Context) string {
	return "home"
}

func (p HomePage) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}
