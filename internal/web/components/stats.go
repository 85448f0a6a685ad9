package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Stat struct {
	Icon   string
	Target int    // 计数动画的目标值
	Suffix string // 如 "+"、"%"、"/7"
	Label  string
}

var Stats = []Stat{
	{"fas fa-building", 500, "+", "Properties Managed"},
	{"fas fa-smile", 98, "%", "Client Satisfaction"},
	{"fas fa-clock", 24, "/7", "Emergency Support"},
	{"fas fa-award", 15, "+", "Years Experience"},
}

// StatsSection 统计数字，初始渲染最终值，site.js 在进入视口后从 0 开始动画
func StatsSection() g.Node {
	return Section(
		Class("stats"),
		Div(
			Class("stats-grid"),
			g.Group(g.Map(Stats, func(s Stat) g.Node {
				return Div(
					Class("stat-item"),
					Div(Class("stat-icon"), Icon(s.Icon)),
					Span(
						Class("stat-number"),
						g.Attr("data-target", strconv.Itoa(s.Target)),
						g.Attr("data-suffix", s.Suffix),
						g.Text(strconv.Itoa(s.Target)+s.Suffix),
					),
					Div(Class("stat-label"), g.Text(s.Label)),
				)
			})),
		),
	)
}
