package mailer

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
)

// ProviderMailgun Mailgun 服务商名
const ProviderMailgun = "mailgun"

// mailgunSender 基于 Mailgun SDK 的实现
type mailgunSender struct {
	client *mailgun.MailgunImpl
}

// NewMailgunSender 创建 Mailgun 发送器
// apiBase 为空时使用 SDK 默认的美国区域地址
func NewMailgunSender(domain, apiKey, apiBase string) (Sender, error) {
	if domain == "" {
		return nil, fmt.Errorf("MAILGUN_DOMAIN is required: %w", ErrNotConfigured)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("MAILGUN_API_KEY is required: %w", ErrNotConfigured)
	}

	client := mailgun.NewMailgun(domain, apiKey)
	if apiBase != "" {
		client.SetAPIBase(apiBase)
	}
	return &mailgunSender{client: client}, nil
}

func (s *mailgunSender) Provider() string {
	return ProviderMailgun
}

func (s *mailgunSender) Send(ctx context.Context, msg *Message) (string, error) {
	message := s.client.NewMessage(msg.From, msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}
	if msg.ReplyTo != "" {
		message.SetReplyTo(msg.ReplyTo)
	}

	_, id, err := s.client.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("mailgun send: %w", err)
	}
	return id, nil
}
