package icon

import (
	g "maragu.dev/gomponents"
)

// catalog maps icon names to the shapes of their 24x24 stroked glyphs.
var catalog = map[string][]g.Node{
	"smartphone": {
		rect("5", "2", "14", "20", "2"),
		path("M12 18h.01"),
	},
	"battery-charging": {
		path("M15 7h1a2 2 0 0 1 2 2v6a2 2 0 0 1-2 2h-2"),
		path("M6 7H4a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2h1"),
		path("m11 7-3 5h4l-3 5"),
		line("22", "11", "22", "13"),
	},
	"droplets": {
		path("M7 16.3c2.2 0 4-1.83 4-4.05 0-1.16-.57-2.26-1.71-3.19S7.29 6.75 7 5.3c-.29 1.45-1.14 2.84-2.29 3.76S3 11.1 3 12.25c0 2.22 1.8 4.05 4 4.05z"),
		path("M12.56 6.6A10.97 10.97 0 0 0 14 3.02c.5 2.5 2 4.9 4 6.5s3 3.5 3 5.5a6.98 6.98 0 0 1-11.91 4.97"),
	},
	"settings": {
		path("M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74l-.15.09a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73V20a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74l.15-.09a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25a2 2 0 0 1-1-1.73V4a2 2 0 0 0-2-2z"),
		circle("12", "12", "3"),
	},
	"phone": {
		path("M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"),
	},
	"mail": {
		rect("2", "4", "20", "16", "2"),
		path("m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"),
	},
	"map-pin": {
		path("M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"),
		circle("12", "10", "3"),
	},
	"message-square": {
		path("M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"),
	},
	"arrow-right": {
		path("M5 12h14"),
		path("m12 5 7 7-7 7"),
	},
	"star": {
		g.El("polygon", g.Attr("points", "12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2")),
	},
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func rect(x, y, width, height, rx string) g.Node {
	return g.El("rect",
		g.Attr("x", x),
		g.Attr("y", y),
		g.Attr("width", width),
		g.Attr("height", height),
		g.Attr("rx", rx),
	)
}

func circle(cx, cy, r string) g.Node {
	return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r))
}

func line(x1, y1, x2, y2 string) g.Node {
	return g.El("line", g.Attr("x1", x1), g.Attr("y1", y1), g.Attr("x2", x2), g.Attr("y2", y2))
}
