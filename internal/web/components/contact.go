package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type ContactDetails struct {
	Address string
	Phone   string
	Email   string
}

// Contact 联系方式与表单，表单由 site.js 以 JSON 提交到 /api/contact
func Contact(details ContactDetails) g.Node {
	return Section(
		Class("contact"),
		ID("contact"),
		Div(
			Class("container"),
			SectionHeader("Get In Touch", "Contact Us", "We'd love to hear from you"),
			Div(
				Class("contact-content"),
				Div(
					Class("contact-info"),
					H3(g.Text("Contact Details")),
					P(Icon("fas fa-map-marker-alt"), g.Text(" "+details.Address)),
					P(Icon("fas fa-phone"), g.Text(" "+details.Phone)),
					P(Icon("fas fa-envelope"), g.Text(" "+details.Email)),
				),
				Div(
					Class("contact-form"),
					H3(g.Text("Send Us a Message")),
					Form(
						ID("contactForm"),
						Action("/api/contact"),
						Method("POST"),
						formField("name", "Name", Input(Type("text"), ID("name"), Name("name"), Required())),
						formField("email", "Email", Input(Type("email"), ID("email"), Name("email"), Required())),
						formField("phone", "Phone", Input(Type("tel"), ID("phone"), Name("phone"))),
						formField("service", "Service", Select(
							ID("service"),
							Name("service"),
							Option(Value(""), g.Text("Select a service")),
							g.Group(g.Map(Services, func(s Service) g.Node {
								return Option(Value(s.Name), g.Text(s.Name))
							})),
						)),
						formField("message", "Message", Textarea(ID("message"), Name("message"), Rows("4"), Required())),
						Button(
							Type("submit"),
							Class("btn btn-primary"),
							ID("contactSubmit"),
							Icon("fas fa-paper-plane"), g.Text(" Send Message"),
						),
						P(Class("form-status"), ID("formStatus"), g.Attr("role", "status"), g.Attr("aria-live", "polite")),
					),
				),
			),
		),
	)
}

func formField(id, label string, control g.Node) g.Node {
	return Div(
		Class("form-group"),
		Label(For(id), g.Text(label)),
		control,
	)
}
