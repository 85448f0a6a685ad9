package request

// ContactRequest 联系表单提交
// 使用位置:
//   - internal/handler/contact_handler.go: Submit
//   - internal/service/contact/service.go: Submit
//
// 只校验必填，不校验邮箱格式和长度
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"required"`
	Service string `json:"service"`
	Message string `json:"message" binding:"required"`
}
