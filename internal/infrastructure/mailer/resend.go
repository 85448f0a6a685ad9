package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ProviderResend Resend 服务商名
const ProviderResend = "resend"

// resendSender 基于 Resend SDK 的实现
type resendSender struct {
	client *resend.Client
}

// NewResendSender 创建 Resend 发送器，apiKey 为空时返回 ErrNotConfigured
func NewResendSender(apiKey string) (Sender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is required: %w", ErrNotConfigured)
	}
	return &resendSender{client: resend.NewClient(apiKey)}, nil
}

func (s *resendSender) Provider() string {
	return ProviderResend
}

func (s *resendSender) Send(ctx context.Context, msg *Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return sent.Id, nil
}
