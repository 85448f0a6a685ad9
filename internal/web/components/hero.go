package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		Class("hero"),
		ID("home"),

		Div(
			Class("hero-bg-shapes"),
			Div(Class("shape shape-1")),
			Div(Class("shape shape-2")),
			Div(Class("shape shape-3")),
		),

		Div(
			Class("hero-content"),
			Div(
				Class("hero-text"),
				H1(
					g.Text("Property "),
					Span(g.Text("Maintenance")),
					g.Text(" & Management Excellence"),
				),
				P(Class("tagline"), g.Text("Residential • Commercial • Industrial")),
				P(g.Text("Specialised in building, renovating, and managing properties with precision and care. Your trusted partner for comprehensive property solutions.")),
				Div(
					Class("hero-buttons"),
					A(Href("#contact"), Class("btn btn-primary"), g.Attr("data-scroll", ""),
						Icon("fas fa-paper-plane"), g.Text(" Get Free Quote"),
					),
					A(Href("#services"), Class("btn btn-outline"), g.Attr("data-scroll", ""),
						Icon("fas fa-arrow-right"), g.Text(" Explore Services"),
					),
				),
			),

			Div(
				Class("hero-image"),
				Img(
					Src("https://images.unsplash.com/photo-1560518883-ce09059eeffa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"),
					Alt("Modern Property"),
					Class("hero-image-main"),
				),
				floatingCard("card-1", "fas fa-check", "500+", "Projects Completed"),
				floatingCard("card-2", "fas fa-star", "98%", "Client Satisfaction"),
			),
		),

		Div(
			Class("scroll-down"),
			g.Attr("data-scroll-target", "#portfolio"),
			Span(g.Text("Scroll Down")),
			Icon("fas fa-chevron-down"),
		),
	)
}

func floatingCard(position, icon, value, label string) g.Node {
	return Div(
		Class("hero-floating-card "+position),
		Div(Class("floating-icon"), Icon(icon)),
		Div(
			Class("floating-text"),
			H4(g.Text(value)),
			P(g.Text(label)),
		),
	)
}
