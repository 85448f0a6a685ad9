// Package metrics 提供 Prometheus 指标：HTTP 请求计数与联系表单邮件发送结果
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 邮件发送结果标签
const (
	ResultSuccess       = "success"
	ResultFailure       = "failure"
	ResultNotConfigured = "not_configured"
)

// Metrics 聚合所有指标，使用独立 Registry 以便测试
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	EmailSends    *prometheus.CounterVec
	EmailDuration *prometheus.HistogramVec
}

// New 创建并注册指标
// withRuntime 为 true 时额外注册 Go 运行时与进程指标
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "site_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		EmailSends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_contact_email_sends_total",
			Help: "Contact notification emails by provider and result.",
		}, []string{"provider", "result"}),
		EmailDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "site_contact_email_send_duration_seconds",
			Help:    "Latency of the outbound email provider call.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"provider"}),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.EmailSends, m.EmailDuration)
	if withRuntime {
		reg.MustRegister(
			prometheus.NewGoCollector(),
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		)
	}
	return m
}

// ObserveEmail 记录一次邮件发送，m 为 nil 时忽略
func (m *Metrics) ObserveEmail(provider, result string, cost time.Duration) {
	if m == nil {
		return
	}
	m.EmailSends.WithLabelValues(provider, result).Inc()
	if result != ResultNotConfigured {
		m.EmailDuration.WithLabelValues(provider).Observe(cost.Seconds())
	}
}

// GinMiddleware 按路由模板统计请求，未匹配的路由统一记为 "unmatched" 以控制标签基数
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler 返回 /metrics 的 HTTP 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
