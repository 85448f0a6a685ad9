// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
// 通过构造函数注入 Service 依赖
package handler

import (
	"fix_syndicate_site/internal/config"
	"fix_syndicate_site/internal/service"
)

// Handlers 聚合所有 Handler 实例
// Router 层通过此结构访问各个 Handler
type Handlers struct {
	Contact *ContactHandler
	Page    *PageHandler
}

// NewHandlers 创建并注入所有 Handler 实例
// svc: Service 层聚合实例
// site: 落地页展示的公司信息
func NewHandlers(svc *service.Services, site config.SiteConfig) (*Handlers, error) {
	page, err := NewPageHandler(site)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Contact: NewContactHandler(svc.Contact),
		Page:    page,
	}, nil
}
