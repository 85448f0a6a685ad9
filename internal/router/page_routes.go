package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes 注册落地页相关路由
func (rt *Router) RegisterPageRoutes(r *gin.Engine) {
	r.GET("/", rt.handlers.Page.Landing)
	r.GET("/health", rt.handlers.Page.Health)
	if rt.static != nil {
		r.StaticFS("/static", http.FS(rt.static))
	}
}

// RegisterMetricsRoutes 注册 /metrics
func (rt *Router) RegisterMetricsRoutes(r *gin.Engine) {
	if rt.metrics == nil {
		return
	}
	path := rt.metricsPath
	if path == "" {
		path = "/metrics"
	}
	r.GET(path, gin.WrapH(rt.metrics))
}
