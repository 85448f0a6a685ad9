package contact

import (
	"context"
	"fmt"
	"time"

	"fix_syndicate_site/internal/config"
	"fix_syndicate_site/internal/dto/request"
	"fix_syndicate_site/internal/infrastructure/mailer"
	"fix_syndicate_site/internal/infrastructure/metrics"
	"fix_syndicate_site/pkg/errorx"

	"go.uber.org/zap"
)

const subjectPrefix = "New Contact Form Submission from "

// contactService 联系表单业务逻辑实现
type contactService struct {
	sender   mailer.Sender // 为 nil 表示未配置
	from     string
	to       string
	business string
	tpl      *notificationTemplates
	metrics  *metrics.Metrics
}

// NewContactService 构造函数
// 模板解析失败属于程序错误，直接返回
func NewContactService(sender mailer.Sender, cfg config.EmailConfig, business string, m *metrics.Metrics) (*contactService, error) {
	tpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	from := cfg.From
	if from == "" {
		from = config.Default().EmailConfig.From
	}
	to := cfg.To
	if to == "" {
		to = config.Default().EmailConfig.To
	}
	if business == "" {
		business = config.Default().SiteConfig.BusinessName
	}

	return &contactService{
		sender:   sender,
		from:     from,
		to:       to,
		business: business,
		tpl:      tpl,
		metrics:  m,
	}, nil
}

// Available 检查邮件服务是否已配置
func (s *contactService) Available() error {
	if s.sender == nil {
		zap.L().Error("email service is not configured, contact form submission rejected")
		s.metrics.ObserveEmail("none", metrics.ResultNotConfigured, 0)
		return errorx.ErrNotConfigured
	}
	return nil
}

// Submit 发送联系表单通知邮件
// 1. 检查服务可用
// 2. 校验必填字段（只判空，不去除空白）
// 3. 渲染邮件正文，提交者邮箱作为 Reply-To
// 4. 调用服务商一次，不重试
func (s *contactService) Submit(ctx context.Context, req request.ContactRequest) error {
	if err := s.Available(); err != nil {
		return err
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return errorx.ErrInvalidParam
	}

	html, text, err := s.tpl.render(req, s.business)
	if err != nil {
		zap.L().Error("render contact notification failed", zap.Error(err))
		return errorx.Wrap(err, errorx.CodeServerError, errorx.ErrServerBusy.Msg)
	}

	msg := &mailer.Message{
		From:    s.from,
		To:      s.to,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("%s%s", subjectPrefix, req.Name),
		HTML:    html,
		Text:    text,
	}

	provider := s.sender.Provider()
	start := time.Now()
	id, err := s.sender.Send(ctx, msg)
	cost := time.Since(start)
	if err != nil {
		zap.L().Error("send contact notification failed",
			zap.String("provider", provider),
			zap.Duration("cost", cost),
			zap.Error(err),
		)
		s.metrics.ObserveEmail(provider, metrics.ResultFailure, cost)
		return errorx.Wrap(err, errorx.CodeServerError, errorx.ErrSendFailed.Msg)
	}

	zap.L().Info("contact notification sent",
		zap.String("provider", provider),
		zap.String("message_id", id),
		zap.Duration("cost", cost),
	)
	s.metrics.ObserveEmail(provider, metrics.ResultSuccess, cost)
	return nil
}
