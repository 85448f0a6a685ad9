package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fix_syndicate_site/internal/config"
	"fix_syndicate_site/internal/handler"
	"fix_syndicate_site/internal/https_server"
	"fix_syndicate_site/internal/infrastructure/logger"
	"fix_syndicate_site/internal/infrastructure/mailer"
	"fix_syndicate_site/internal/infrastructure/metrics"
	"fix_syndicate_site/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()
	zap.L().Info("日志初始化成功", zap.String("mode", conf.MainConfig.Mode))

	gin.SetMode(conf.MainConfig.Mode)

	// 3. 初始化参数校验翻译器
	if err := handler.InitTrans(conf.MainConfig.Locale); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 4. 初始化指标
	m := metrics.New(true)

	// 5. 初始化邮件服务
	// 缺少凭证不退出进程，联系表单在请求时返回 500
	sender, err := mailer.Init(conf.EmailConfig)
	if err != nil {
		zap.L().Error("邮件服务未配置，联系表单将不可用", zap.String("provider", conf.EmailConfig.Provider), zap.Error(err))
		sender = nil
	} else {
		zap.L().Info("邮件服务初始化成功", zap.String("provider", sender.Provider()))
	}

	// 6. 初始化 Service 与 Handler (依赖注入)
	svc, err := service.NewServices(conf, sender, m)
	if err != nil {
		zap.L().Fatal("init services failed", zap.Error(err))
	}
	handlers, err := handler.NewHandlers(svc, conf.SiteConfig)
	if err != nil {
		zap.L().Fatal("init handlers failed", zap.Error(err))
	}

	// 7. 初始化 HTTP 服务器
	engine := https_server.Init(conf, handlers, m)
	srv := &http.Server{
		Addr:    conf.Addr(),
		Handler: engine,
	}

	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), conf.MainConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown error", zap.Error(err))
	}

	zap.L().Info("服务器已关闭")
}
