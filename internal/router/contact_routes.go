package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contactPath = "/api/contact"

// RegisterContactRoutes 注册联系表单路由
// 常见的非 POST 方法显式注册 405，其余方法经 NoMethod 走同一个处理器
// OPTIONS 在启用 CORS 时由 cors 中间件先行处理
func (rt *Router) RegisterContactRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/contact", rt.handlers.Contact.Submit)
	api.Match([]string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}, "/contact", rt.handlers.Contact.MethodNotAllowed)
}
