// Package handler 提供 HTTP 请求处理器
// 本文件处理联系表单提交
package handler

import (
	"fix_syndicate_site/internal/dto/request"
	"fix_syndicate_site/internal/service"
	"fix_syndicate_site/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// 成功提示文案
const contactSuccessMessage = "Email sent successfully!"

// ContactHandler 联系表单请求处理器
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler 创建联系表单处理器实例
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// Submit 提交联系表单
// POST /api/contact
// 请求体: request.ContactRequest
// 响应: 200 {"message"} / 400 / 500 {"error"}
func (h *ContactHandler) Submit(c *gin.Context) {
	// 1. 邮件服务未配置时不解析请求体，直接返回 500
	if err := h.contactSvc.Available(); err != nil {
		HandleError(c, err)
		return
	}

	// 2. 绑定并校验必填字段
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	// 3. 发送通知邮件，使用请求上下文，客户端断开即取消
	if err := h.contactSvc.Submit(c.Request.Context(), req); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, contactSuccessMessage)
}

// MethodNotAllowed /api/contact 只接受 POST
func (h *ContactHandler) MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", "POST")
	HandleError(c, errorx.ErrMethodNotAllowed)
}
