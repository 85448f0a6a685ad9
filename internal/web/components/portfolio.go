package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PortfolioItem struct {
	Image string
	Title string
	Text  string
}

const unsplashParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

var PortfolioItems = []PortfolioItem{
	{"https://images.unsplash.com/photo-1581578731548-c64695cc6952" + unsplashParams, "General Maintenance", "Complete repair and maintenance solutions"},
	{"https://images.unsplash.com/photo-1628177142898-93e36e4e3a50" + unsplashParams, "Cleaning & Janitorial", "Professional cleaning services"},
	{"https://images.unsplash.com/photo-1558904541-efa843a96f01" + unsplashParams, "Grounds & Landscaping", "Beautiful outdoor spaces"},
	{"https://images.unsplash.com/photo-1504307651254-35680f356dfd" + unsplashParams, "Exterior & Structural", "Building exterior maintenance"},
	{"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2" + unsplashParams, "Property Turnover", "Rental preparation services"},
	{"https://images.unsplash.com/photo-1621905251189-08b45d6a269e" + unsplashParams, "Emergency Services", "24/7 on-call support"},
	{"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40" + unsplashParams, "Property Inspections", "Detailed assessment reports"},
	{"https://images.unsplash.com/photo-1600585154340-be6161a56a0c" + unsplashParams, "Preventive Maintenance", "Scheduled care programs"},
}

// Portfolio 轮播区，条目重复一遍以便 CSS 动画无缝循环
func Portfolio() g.Node {
	items := append(append([]PortfolioItem{}, PortfolioItems...), PortfolioItems...)

	return Section(
		Class("carousel-section"),
		ID("portfolio"),
		SectionHeader("Our Portfolio", "Services We Provide", "Explore our comprehensive range of property maintenance and management services"),

		Div(
			Class("carousel-container"),
			Div(
				Class("carousel-track"),
				ID("carouselTrack"),
				g.Group(g.Map(items, func(item PortfolioItem) g.Node {
					return Div(
						Class("carousel-item"),
						Img(Src(item.Image), Alt(item.Title), g.Attr("loading", "lazy")),
						Div(
							Class("carousel-overlay"),
							H3(g.Text(item.Title)),
							P(g.Text(item.Text)),
						),
					)
				})),
			),
		),

		Div(
			Class("carousel-nav"),
			Button(Class("carousel-btn"), ID("prevBtn"), Type("button"), g.Attr("aria-label", "Previous"), Icon("fas fa-arrow-left")),
			Button(Class("carousel-btn"), ID("nextBtn"), Type("button"), g.Attr("aria-label", "Next"), Icon("fas fa-arrow-right")),
		),
	)
}
