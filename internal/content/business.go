package content

import (
	"net/url"
	"strconv"
)

// Business holds the contact details shown in the header, hero, contact
// section and footer. Every field is emitted as-is.
type Business struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Owner   string `yaml:"owner" mapstructure:"owner"`
	Address string `yaml:"address" mapstructure:"address"`

	// Phone is the number as displayed to visitors.
	Phone string `yaml:"phone" mapstructure:"phone"`

	// WhatsApp is the number chat links open, digits only, with the
	// country code.
	WhatsApp string   `yaml:"whatsapp" mapstructure:"whatsapp"`
	Email    string   `yaml:"email" mapstructure:"email"`
	Map      Location `yaml:"map" mapstructure:"map"`
}

// Location is the point the contact map is centred on.
type Location struct {
	Latitude  float64 `yaml:"latitude" mapstructure:"latitude"`
	Longitude float64 `yaml:"longitude" mapstructure:"longitude"`
	Zoom      int     `yaml:"zoom" mapstructure:"zoom"`
}

// DefaultBusiness returns the shop's own details.
func DefaultBusiness() Business {
	return Business{
		Name:     "PhoneFixPro",
		Owner:    "Daffa naufal santoso",
		Address:  "123 Repair Street, Jakarta, Indonesia",
		Phone:    "+62 815-1003-4748",
		WhatsApp: "6281510034748",
		Email:    "info@phonefixpro.com",
		Map: Location{
			Latitude:  -6.2088,
			Longitude: 106.8456,
			Zoom:      15,
		},
	}
}

// WhatsAppURL returns the wa.me chat link for the business's number.
func (b Business) WhatsAppURL() string {
	return "https://wa.me/" + b.WhatsApp
}

// MapEmbedURL returns the URL of an embeddable map centred on b.Map.
func (b Business) MapEmbedURL() string {
	q := url.Values{}
	q.Set("q", strconv.FormatFloat(b.Map.Latitude, 'f', -1, 64)+","+strconv.FormatFloat(b.Map.Longitude, 'f', -1, 64))
	q.Set("z", strconv.Itoa(b.Map.Zoom))
	q.Set("output", "embed")
	return "https://maps.google.com/maps?" + q.Encode()
}
