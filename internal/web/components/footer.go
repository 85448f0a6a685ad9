package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var socialLinks = []struct {
	Label string
	Icon  string
}{
	{"Facebook", "fab fa-facebook-f"},
	{"Twitter", "fab fa-twitter"},
	{"Instagram", "fab fa-instagram"},
	{"LinkedIn", "fab fa-linkedin-in"},
}

func PageFooter(first, rest string, year int) g.Node {
	return Footer(
		Div(
			Class("container"),
			Div(
				Class("footer-content"),
				Div(
					Class("footer-logo"),
					A(Href("#home"), g.Attr("data-scroll", ""), BrandName(first, rest)),
				),
				Div(
					Class("footer-links"),
					g.Group(g.Map(navItems, func(item struct {
						Target string
						Label  string
					}) g.Node {
						return ScrollLink(item.Target, item.Label)
					})),
				),
				Div(
					Class("footer-social"),
					g.Group(g.Map(socialLinks, func(s struct {
						Label string
						Icon  string
					}) g.Node {
						return A(Href("#"), g.Attr("aria-label", s.Label), Icon(s.Icon))
					})),
				),
			),
			Div(
				Class("footer-bottom"),
				P(g.Raw("&copy; "), g.Text(strconv.Itoa(year)+" "+first+" "+rest+" Property Maintenance & Management. All Rights Reserved.")),
			),
		),
	)
}

func ScrollTopButton() g.Node {
	return Button(
		Class("scroll-top"),
		ID("scrollTop"),
		Type("button"),
		g.Attr("aria-label", "Scroll to top"),
		Icon("fas fa-arrow-up"),
	)
}
