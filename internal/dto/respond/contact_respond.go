package respond

// MessageRespond 成功响应 {"message": "..."}
type MessageRespond struct {
	Message string `json:"message"`
}

// ErrorRespond 失败响应 {"error": "..."}
type ErrorRespond struct {
	Error string `json:"error"`
}

// HealthRespond 健康检查响应
type HealthRespond struct {
	Status string `json:"status"`
}
