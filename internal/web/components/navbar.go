package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Navbar(first, rest, callNumber string) g.Node {
	return Nav(
		ID("navbar"),
		A(Href("#home"), Class("nav-logo"), g.Attr("data-scroll", ""), BrandName(first, rest)),
		Ul(
			Class("nav-links"),
			g.Group(g.Map(navItems, func(item struct {
				Target string
				Label  string
			}) g.Node {
				return Li(ScrollLink(item.Target, item.Label))
			})),
			Li(A(Href("tel:"+strings.ReplaceAll(callNumber, " ", "")), Class("nav-cta"), g.Text("Call Now"))),
		),
	)
}
