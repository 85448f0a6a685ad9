package handler

import (
	"net/http"

	"fix_syndicate_site/internal/config"
	"fix_syndicate_site/internal/dto/respond"
	"fix_syndicate_site/internal/web"
	"fix_syndicate_site/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// PageHandler 落地页与健康检查
type PageHandler struct {
	landing []byte // 启动时预渲染
}

// NewPageHandler 渲染落地页，失败时返回错误由 main 处理
func NewPageHandler(site config.SiteConfig) (*PageHandler, error) {
	landing, err := web.RenderLanding(site)
	if err != nil {
		return nil, err
	}
	return &PageHandler{landing: landing}, nil
}

// Landing GET /
func (h *PageHandler) Landing(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.landing)
}

// Health GET /health
func (h *PageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, respond.HealthRespond{Status: "ok"})
}

// NotFound 未匹配路由统一返回 JSON
func (h *PageHandler) NotFound(c *gin.Context) {
	HandleError(c, errorx.ErrNotFound)
}

// NoMethod 路由存在但方法不匹配
func (h *PageHandler) NoMethod(c *gin.Context) {
	HandleError(c, errorx.ErrNoMethod)
}
