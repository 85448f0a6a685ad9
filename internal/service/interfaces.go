// Package service 定义业务层接口
// Handler 层只依赖这里的接口，便于测试和替换实现
package service

import (
	"context"

	"fix_syndicate_site/internal/dto/request"
)

// ContactService 联系表单业务接口
// 校验提交内容、渲染通知邮件并交给邮件服务商发送
type ContactService interface {
	// Available 邮件服务是否可用，未配置凭证时返回 errorx.ErrNotConfigured
	Available() error
	// Submit 发送一封联系表单通知邮件
	Submit(ctx context.Context, req request.ContactRequest) error
}
