// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"io/fs"
	"net/http"

	"fix_syndicate_site/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器，持有注册路由所需的全部依赖
type Router struct {
	handlers    *handler.Handlers
	static      fs.FS        // 挂载到 /static
	metrics     http.Handler // 为 nil 时不注册指标路由
	metricsPath string
}

// Option 可选依赖
type Option func(*Router)

// WithStatic 挂载静态资源
func WithStatic(static fs.FS) Option {
	return func(rt *Router) { rt.static = static }
}

// WithMetrics 注册 Prometheus 指标路由
func WithMetrics(path string, h http.Handler) Option {
	return func(rt *Router) {
		rt.metricsPath = path
		rt.metrics = h
	}
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers, opts ...Option) *Router {
	rt := &Router{handlers: handlers}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterPageRoutes(r)    // 落地页、静态资源、健康检查
	rt.RegisterContactRoutes(r) // 联系表单 API
	rt.RegisterMetricsRoutes(r) // Prometheus 指标

	r.NoRoute(rt.handlers.Page.NotFound)
	r.NoMethod(rt.noMethod)
}

// noMethod 路由存在但方法不匹配
// /api/contact 上的任何非 POST 方法（含 TRACE 等未显式注册的方法）都返回联系表单的 405
func (rt *Router) noMethod(c *gin.Context) {
	if c.Request.URL.Path == contactPath {
		rt.handlers.Contact.MethodNotAllowed(c)
		return
	}
	rt.handlers.Page.NoMethod(c)
}
