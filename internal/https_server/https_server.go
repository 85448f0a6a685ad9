// Package https_server 提供 HTTP 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件、静态资源和路由
package https_server

import (
	"net/http"

	"fix_syndicate_site/internal/config"
	"fix_syndicate_site/internal/handler"
	"fix_syndicate_site/internal/infrastructure/logger"
	"fix_syndicate_site/internal/infrastructure/metrics"
	"fix_syndicate_site/internal/infrastructure/middleware"
	"fix_syndicate_site/internal/router"
	"fix_syndicate_site/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Init 初始化 HTTP 服务器并返回 Gin 引擎实例
// m 为 nil 或配置关闭时不注册指标中间件和 /metrics
// 中间件顺序：
//  1. 请求 ID
//  2. Zap 日志与 panic 恢复
//  3. 安全响应头 / HTTPS 重定向
//  4. 指标
//  5. CORS（配置了来源才启用）
func Init(cfg *config.Config, handlers *handler.Handlers, m *metrics.Metrics) *gin.Engine {
	// 不使用 gin.Default() 以便完全控制中间件
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))
	engine.Use(middleware.SecureHeaders(cfg.SecureConfig, cfg.MainConfig.Mode == gin.DebugMode))

	metricsEnabled := m != nil && cfg.MetricsConfig.Enabled
	if metricsEnabled {
		engine.Use(m.GinMiddleware())
	}

	if len(cfg.CorsConfig.AllowOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CorsConfig.AllowOrigins
		corsConfig.AllowMethods = []string{http.MethodPost, http.MethodOptions}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
		engine.Use(cors.New(corsConfig))
	}

	opts := []router.Option{}
	if static, err := web.Static(); err != nil {
		zap.L().Error("static assets unavailable", zap.Error(err))
	} else {
		opts = append(opts, router.WithStatic(static))
	}
	if metricsEnabled {
		opts = append(opts, router.WithMetrics(cfg.MetricsConfig.Path, m.Handler()))
	}

	rt := router.NewRouter(handlers, opts...)
	rt.RegisterRoutes(engine)

	return engine
}
