// Package mailer 封装托管的事务邮件服务（Resend / Mailgun）
// Service 层只依赖 Sender 接口，具体服务商由配置决定
package mailer

import (
	"context"
	"errors"
)

// Message 一封待发送的邮件
type Message struct {
	From    string // 发件人，如 "Fix Syndicate Contact Form <onboarding@resend.dev>"
	To      string // 收件人
	ReplyTo string // 回复地址，联系表单中为提交者邮箱
	Subject string
	HTML    string
	Text    string
}

// Sender 邮件发送接口
type Sender interface {
	// Send 发送一封邮件，返回服务商的消息 ID
	// 只调用一次，不重试
	Send(ctx context.Context, msg *Message) (string, error)
	// Provider 服务商名称，用于日志和指标
	Provider() string
}

// ErrNotConfigured 缺少服务商凭证
var ErrNotConfigured = errors.New("mailer: email provider credentials are not configured")

// ErrUnknownProvider 配置了不支持的服务商
var ErrUnknownProvider = errors.New("mailer: unknown email provider")
