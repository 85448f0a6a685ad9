package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Service struct {
	Icon        string
	Name        string
	Description string
}

// Services 服务列表，联系表单的下拉选项也使用这里的 Name
var Services = []Service{
	{"fas fa-tools", "General Maintenance & Repairs", "From minor fixes to major repairs, we handle all aspects of property maintenance with expertise."},
	{"fas fa-broom", "Cleaning & Janitorial", "Professional cleaning solutions to keep your property spotless and welcoming."},
	{"fas fa-leaf", "Grounds & Landscaping", "Transform outdoor spaces with expert landscaping and grounds maintenance."},
	{"fas fa-building", "Exterior & Structural", "Maintain and restore your building's exterior to ensure safety and aesthetics."},
	{"fas fa-undo", "Property Turnover", "Efficient turnover services for rental properties, including cleaning and repairs."},
	{"fas fa-life-ring", "Emergency Services", "24/7 emergency maintenance and repair services to address urgent issues."},
	{"fas fa-search", "Property Inspections", "Thorough inspections to identify and address potential maintenance issues."},
	{"fas fa-calendar-check", "Preventive Maintenance", "Proactive maintenance plans to prevent issues and extend the life of your property."},
}

func ServicesSection() g.Node {
	return Section(
		Class("services"),
		ID("services"),
		Div(
			Class("container"),
			SectionHeader("What We Offer", "Our Professional Services", "Comprehensive property maintenance solutions tailored to your needs"),
			Div(
				Class("services-grid"),
				g.Group(g.Map(Services, func(s Service) g.Node {
					return Div(
						Class("service-card"),
						Div(Class("service-icon"), Icon(s.Icon)),
						H3(g.Text(s.Name)),
						P(g.Text(s.Description)),
					)
				})),
			),
		),
	)
}
