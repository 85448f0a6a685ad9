package contact

import (
	"embed"
	"fmt"

	"fix_syndicate_site/internal/dto/request"

	"github.com/aymerick/raymond"
)

//go:embed templates/*.hbs
var templateFS embed.FS

const (
	notProvided  = "Not provided"
	notSpecified = "Not specified"
)

// notificationTemplates 预解析的通知邮件模板
// HTML 模板使用 {{x}} 自动转义，纯文本模板使用 {{{x}}} 原样输出
type notificationTemplates struct {
	html *raymond.Template
	text *raymond.Template
}

func loadTemplates() (*notificationTemplates, error) {
	html, err := parseTemplate("templates/notification.html.hbs")
	if err != nil {
		return nil, err
	}
	text, err := parseTemplate("templates/notification.txt.hbs")
	if err != nil {
		return nil, err
	}
	return &notificationTemplates{html: html, text: text}, nil
}

func parseTemplate(name string) (*raymond.Template, error) {
	content, err := templateFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	tpl, err := raymond.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return tpl, nil
}

// render 渲染 HTML 与纯文本正文
func (t *notificationTemplates) render(req request.ContactRequest, business string) (html, text string, err error) {
	phone := req.Phone
	if phone == "" {
		phone = notProvided
	}
	service := req.Service
	if service == "" {
		service = notSpecified
	}

	ctx := map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"phone":    phone,
		"service":  service,
		"message":  req.Message,
		"business": business,
	}

	if html, err = t.html.Exec(ctx); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	if text, err = t.text.Exec(ctx); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	return html, text, nil
}
