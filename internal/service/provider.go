// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"fix_syndicate_site/internal/config"
	"fix_syndicate_site/internal/infrastructure/mailer"
	"fix_syndicate_site/internal/infrastructure/metrics"
	"fix_syndicate_site/internal/service/contact"
)

// Services 聚合所有 Service 实例
type Services struct {
	Contact ContactService // 联系表单 Service
}

// NewServices 创建并注入所有 Service 实例
// sender 为 nil 表示邮件服务未配置，联系表单会返回 500 而不是让进程退出
func NewServices(cfg *config.Config, sender mailer.Sender, m *metrics.Metrics) (*Services, error) {
	contactSvc, err := contact.NewContactService(sender, cfg.EmailConfig, cfg.SiteConfig.BusinessName, m)
	if err != nil {
		return nil, err
	}

	return &Services{
		Contact: contactSvc,
	}, nil
}
