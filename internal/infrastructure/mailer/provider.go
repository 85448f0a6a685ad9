package mailer

import (
	"fmt"
	"strings"

	"fix_syndicate_site/internal/config"
)

// Init 根据配置创建 Sender
// 缺少凭证时返回包装了 ErrNotConfigured 的错误，调用方应记录日志而不是退出进程
func Init(cfg config.EmailConfig) (Sender, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch provider {
	case "", ProviderResend:
		return NewResendSender(cfg.ResendAPIKey)
	case ProviderMailgun:
		return NewMailgunSender(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
