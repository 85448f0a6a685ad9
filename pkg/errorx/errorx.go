// Package errorx 定义带 HTTP 状态码的业务错误
// Handler 层通过 errors.As 识别 CodeError，并把 Msg 原样返回给前端
package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeError 带状态码的自定义错误
// 实现了 error 接口，支持 %w 包装底层错误，且能被 errors.Is/errors.As 识别
type CodeError struct {
	Code  int    // HTTP 状态码
	Msg   string // 返回给前端的提示信息
	cause error  // 被包装的底层错误（只记日志，不返回前端）
}

// Error 实现 Go 标准 error 接口
// 当存在底层错误时，返回格式为 "消息: 底层错误"；否则仅返回消息
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap 实现 errors.Unwrap 接口，支持 errors.Is/errors.As 向下追溯
func (e *CodeError) Unwrap() error {
	return e.cause
}

// Is 同码同消息即视为同一错误，便于 errors.Is(err, ErrSendFailed) 判断包装后的错误
func (e *CodeError) Is(target error) bool {
	var t *CodeError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Msg == t.Msg
}

// New 创建一个新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 创建一个带格式化消息的 CodeError
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误，添加状态码和消息
// 用法: errorx.Wrap(err, CodeServerError, ErrSendFailed.Msg)
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// GetCode 从错误中提取状态码，如果不是 CodeError 则返回 500
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerError
}

// 状态码常量定义
const (
	CodeSuccess          = http.StatusOK
	CodeInvalidParam     = http.StatusBadRequest
	CodeNotFound         = http.StatusNotFound
	CodeMethodNotAllowed = http.StatusMethodNotAllowed
	CodeServerError      = http.StatusInternalServerError
)

// 预定义常用错误实例
// 这些实例既可直接返回，也可用于 errors.Is 比较
var (
	ErrInvalidParam     = New(CodeInvalidParam, "Please fill in all required fields")
	ErrInvalidBody      = New(CodeInvalidParam, "Invalid request body")
	ErrNotFound         = New(CodeNotFound, "Not found")
	ErrMethodNotAllowed = New(CodeMethodNotAllowed, "Method not allowed. Please use POST.")
	ErrNoMethod         = New(CodeMethodNotAllowed, "Method not allowed")
	ErrNotConfigured    = New(CodeServerError, "Email service is not configured. Please contact support.")
	ErrSendFailed       = New(CodeServerError, "Failed to send email. Please try again or contact us directly.")
	ErrServerBusy       = New(CodeServerError, "An error occurred while sending your message")
	ErrInternal         = New(CodeServerError, "Internal server error")
)
