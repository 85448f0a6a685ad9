package handler

import (
	"errors"
	"net/http"

	"fix_syndicate_site/internal/dto/respond"
	"fix_syndicate_site/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// HandleSuccess 返回成功响应 {"message": msg}
func HandleSuccess(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, respond.MessageRespond{Message: msg})
}

// HandleError 通用错误处理方法
// 自动识别 errorx.CodeError 类型的业务错误，使用其状态码和消息；其他错误记日志并返回 500
// 使用示例：
//
//	if err := svc.DoSomething(); err != nil {
//	    HandleError(c, err)
//	    return
//	}
func HandleError(c *gin.Context, err error) {
	// 1. 业务错误：直接返回携带的状态码和消息，底层原因只进日志
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(codeErr.Code, respond.ErrorRespond{Error: codeErr.Msg})
		return
	}

	// 2. 系统错误或未知错误
	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(errorx.ErrServerBusy.Code, respond.ErrorRespond{Error: errorx.ErrServerBusy.Msg})
}

// HandleParamError 处理参数绑定错误
// 必填校验失败返回 "Please fill in all required fields"，翻译后的字段错误只记日志
// JSON 格式或类型错误返回 "Invalid request body"
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := map[string]string{}
		if Trans != nil {
			fields = RemoveTopStruct(validationErrs.Translate(Trans))
		}
		zap.L().Info("contact form validation failed", zap.Any("fields", fields))
		HandleError(c, errorx.ErrInvalidParam)
		return
	}

	zap.L().Info("request body bind error", zap.Error(err))
	HandleError(c, errorx.Wrap(err, errorx.CodeInvalidParam, errorx.ErrInvalidBody.Msg))
}
