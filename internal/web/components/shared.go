package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon Font Awesome 图标
func Icon(class string) g.Node {
	return I(Class(class), g.Attr("aria-hidden", "true"))
}

// BrandName "Fix <span>Syndicate</span>" 样式的品牌名，第一个词之后的部分高亮
func BrandName(first, rest string) g.Group {
	return g.Group{
		g.Text(first + " "),
		Span(g.Text(rest)),
	}
}

// ScrollLink 页内锚点，点击时由 site.js 平滑滚动
func ScrollLink(target, label string, children ...g.Node) g.Node {
	return A(
		Href(target),
		g.Attr("data-scroll", ""),
		g.Group(children),
		g.If(label != "", g.Text(label)),
	)
}

func SectionHeader(badge, title, subtitle string) g.Node {
	return Div(
		Class("section-header"),
		Span(Class("section-badge"), g.Text(badge)),
		H2(Class("section-title"), g.Text(title)),
		P(Class("section-subtitle"), g.Text(subtitle)),
	)
}

// navItems 导航栏与页脚共用的锚点
var navItems = []struct {
	Target string
	Label  string
}{
	{"#home", "Home"},
	{"#services", "Services"},
	{"#about", "About"},
	{"#contact", "Contact"},
}
