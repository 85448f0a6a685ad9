package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func About(business string) g.Node {
	return Section(
		Class("about"),
		ID("about"),
		Div(
			Class("container"),
			SectionHeader("About Us", "Who We Are", "Learn more about our company and values"),
			Div(
				Class("about-content"),
				Div(
					Class("about-text"),
					H3(g.Text("Committed to Excellence")),
					P(g.Textf("At %s, we are dedicated to providing top-notch property maintenance and management services. Our team of experts is committed to ensuring your property is well-maintained, safe, and aesthetically pleasing.", business)),
					P(g.Text("With years of experience in the industry, we understand the unique needs of each property and tailor our services accordingly. We pride ourselves on our attention to detail, reliability, and customer satisfaction.")),
					A(Href("#contact"), Class("btn btn-primary"), g.Attr("data-scroll", ""),
						Icon("fas fa-paper-plane"), g.Text(" Contact Us"),
					),
				),
				Div(
					Class("about-image"),
					Img(
						Src("https://images.unsplash.com/photo-1588702547920-7b8f3f3f3f3f"+unsplashParams),
						Alt("About Us"),
						Class("about-image-main"),
					),
				),
			),
		),
	)
}
