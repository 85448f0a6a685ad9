package middleware

import (
	"fix_syndicate_site/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// SecureHeaders 安全响应头中间件，SSLRedirect 开启时把 HTTP 请求重定向到 HTTPS
// isDevelopment 为 true 时 secure 会跳过大部分检查，便于本地调试
func SecureHeaders(cfg config.SecureConfig, isDevelopment bool) gin.HandlerFunc {
	// 在返回函数之前初始化，避免每次请求都重复创建对象
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect:        cfg.SSLRedirect,
		SSLHost:            cfg.SSLHost,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      isDevelopment,
	})

	return func(c *gin.Context) {
		// 重定向时 Process 已经写好响应并返回错误
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			// 不要在中间件里用 Fatal，记录后终止当前请求即可
			zap.L().Debug("secure middleware stopped request", zap.Error(err))
			c.Abort()
			return
		}

		// 避免重定向后还继续执行后续 handler
		if status := c.Writer.Status(); status > 300 && status < 399 {
			c.Abort()
			return
		}
		c.Next()
	}
}
