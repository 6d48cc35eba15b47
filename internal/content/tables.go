package content

import "slices"

const unsplashParams = "?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=800&q=80"

// HeroImageURL is the photo shown beside the hero banner.
const HeroImageURL = "https://images.unsplash.com/photo-1581092160607-ee22621dd758" + unsplashParams

var services = []Service{
	{
		ID:          1,
		Title:       "Screen Repair",
		Description: "Professional screen replacement service for all phone models",
		Icon:        "smartphone",
	},
	{
		ID:          2,
		Title:       "Battery Replacement",
		Description: "Quality battery replacement to extend your phone's life",
		Icon:        "battery-charging",
	},
	{
		ID:          3,
		Title:       "Water Damage Repair",
		Description: "Expert water damage treatment and repair",
		Icon:        "droplets",
	},
	{
		ID:          4,
		Title:       "Software Issues",
		Description: "Resolution of all software-related problems",
		Icon:        "settings",
	},
}

var gallery = []GalleryItem{
	{
		ID:       1,
		ImageURL: "https://images.unsplash.com/photo-1580910051074-3eb694886505" + unsplashParams,
		Title:    "Phone Screen Repair",
	},
	{
		ID:       2,
		ImageURL: "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789" + unsplashParams,
		Title:    "Battery Replacement",
	},
	{
		ID:       3,
		ImageURL: "https://images.unsplash.com/photo-1597740985671-2a8a3b80502e" + unsplashParams,
		Title:    "Phone Diagnostics",
	},
}

var testimonials = []Testimonial{
	{
		ID:       1,
		Name:     "Billie Joe",
		Content:  "Excellent service! Fixed my iPhone screen in just 30 minutes.",
		Rating:   5,
		ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e" + unsplashParams,
	},
	{
		ID:       2,
		Name:     "Will Smith",
		Content:  "Very professional and affordable. Highly recommended!",
		Rating:   5,
		ImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80" + unsplashParams,
	},
	{
		ID:       3,
		Name:     "Mike Shinoda",
		Content:  "Great experience! They fixed my water-damaged phone perfectly.",
		Rating:   5,
		ImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e" + unsplashParams,
	},
}

// Services returns the services grid, in display order.
func Services() []Service {
	return slices.Clone(services)
}

// Gallery returns the gallery items, in display order.
func Gallery() []GalleryItem {
	return slices.Clone(gallery)
}

// Testimonials returns the customer testimonials, in display order.
func Testimonials() []Testimonial {
	return slices.Clone(testimonials)
}
