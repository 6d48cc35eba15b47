package site

// NavLink is an in-page navigation anchor.
type NavLink struct {
	Anchor string
	Label  string
}

// NavLinks are the section anchors shown in the header and footer.
var NavLinks = []NavLink{
	{Anchor: "services", Label: "Services"},
	{Anchor: "gallery", Label: "Gallery"},
	{Anchor: "testimonials", Label: "Testimonials"},
	{Anchor: "contact", Label: "Contact"},
}
