// Package config 提供应用程序的配置加载功能
// 加载顺序：内置默认值 -> TOML 配置文件 -> .env 文件 -> 环境变量
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName         string        `toml:"appName"`                                // 应用名称，用于日志标识等
	Host            string        `toml:"host" env:"HOST"`                        // 服务器监听地址，如 "0.0.0.0"
	Port            int           `toml:"port" env:"PORT"`                        // 服务器监听端口，如 8000
	Mode            string        `toml:"mode" env:"GIN_MODE"`                    // 运行模式：debug, release, test
	Locale          string        `toml:"locale" env:"LOCALE"`                    // 参数校验错误的翻译语言：en, zh
	ShutdownTimeout time.Duration `toml:"shutdownTimeout" env:"SHUTDOWN_TIMEOUT"` // 优雅关闭等待时间
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`               // 日志文件存储目录
	FileName   string `toml:"fileName"`              // 日志文件名
	MaxSize    int    `toml:"maxSize"`               // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"`            // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`                // 保留旧日志文件的最大天数
	Level      string `toml:"level" env:"LOG_LEVEL"` // 日志级别：debug, info, warn, error
}

// EmailConfig 邮件服务配置
// Provider 为 "resend"（默认）或 "mailgun"
type EmailConfig struct {
	Provider       string `toml:"provider" env:"EMAIL_PROVIDER"`
	ResendAPIKey   string `toml:"resendApiKey" env:"RESEND_API_KEY"`
	MailgunDomain  string `toml:"mailgunDomain" env:"MAILGUN_DOMAIN"`
	MailgunAPIKey  string `toml:"mailgunApiKey" env:"MAILGUN_API_KEY"`
	MailgunAPIBase string `toml:"mailgunApiBase" env:"MAILGUN_API_BASE"` // EU 区域等需要覆盖
	From           string `toml:"from" env:"EMAIL_FROM"`                 // 发件人，如 "Name <addr>"
	To             string `toml:"to" env:"EMAIL_TO"`                     // 接收联系表单通知的运营邮箱
}

// CorsConfig 跨域配置，AllowOrigins 为空时不启用 CORS 中间件
type CorsConfig struct {
	AllowOrigins []string `toml:"allowOrigins" env:"CORS_ALLOW_ORIGINS" envSeparator:","`
}

// SecureConfig 安全响应头与 HTTPS 重定向配置
type SecureConfig struct {
	SSLRedirect bool   `toml:"sslRedirect" env:"SSL_REDIRECT"`
	SSLHost     string `toml:"sslHost" env:"SSL_HOST"`
}

// MetricsConfig Prometheus 指标配置
type MetricsConfig struct {
	Enabled bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path    string `toml:"path"`
}

// SiteConfig 落地页上展示的公司信息
type SiteConfig struct {
	BusinessName  string `toml:"businessName"`
	Phone         string `toml:"phone"`      // 展示用号码
	CallNumber    string `toml:"callNumber"` // 导航栏 "Call Now" 拨号号码
	Email         string `toml:"email"`
	Address       string `toml:"address"`
	CopyrightYear int    `toml:"copyrightYear"` // 为 0 时使用当前年份
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig    `toml:"mainConfig"`
	LogConfig     `toml:"logConfig"`
	EmailConfig   `toml:"emailConfig"`
	CorsConfig    `toml:"corsConfig"`
	SecureConfig  `toml:"secureConfig"`
	MetricsConfig `toml:"metricsConfig"`
	SiteConfig    `toml:"siteConfig"`
}

// DefaultPaths 候选配置文件路径（优先加载本地配置）
var DefaultPaths = []string{
	"configs/config_local.toml",       // 本地开发配置（优先）
	"configs/config.toml",             // 默认配置
	"../../configs/config_local.toml", // 从子目录运行时的路径
	"../../configs/config.toml",       // 从子目录运行时的路径
}

// Default 返回内置默认配置
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName:         "fix_syndicate_site",
			Host:            "0.0.0.0",
			Port:            8000,
			Mode:            "release",
			Locale:          "en",
			ShutdownTimeout: 5 * time.Second,
		},
		LogConfig: LogConfig{
			LogPath:    "logs",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Level:      "info",
		},
		EmailConfig: EmailConfig{
			Provider: "resend",
			From:     "Fix Syndicate Contact Form <onboarding@resend.dev>",
			To:       "rapidshiftdev@gmail.com",
		},
		MetricsConfig: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		SiteConfig: SiteConfig{
			BusinessName: "Fix Syndicate",
			Phone:        "(123) 456-7890",
			CallNumber:   "0416493356",
			Email:        "info@fixsyndicate.com",
			Address:      "123 Main Street, Hometown, USA",
		},
	}
}

// Load 使用默认候选路径加载配置
func Load() (*Config, error) {
	return LoadFrom(DefaultPaths, ".env")
}

// LoadFrom 依次尝试 paths 中的 TOML 文件，找到第一个即停止；找不到则保留默认值
// envFile 不存在时忽略，已存在的环境变量不会被 .env 覆盖
func LoadFrom(paths []string, envFile string) (*Config, error) {
	cfg := Default()

	for _, path := range paths {
		_, err := toml.DecodeFile(path, cfg)
		if err == nil {
			break
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Port <= 0 {
		cfg.Port = Default().Port
	}

	mode, err := normalizeMode(cfg.MainConfig.Mode)
	if err != nil {
		return nil, err
	}
	cfg.MainConfig.Mode = mode

	locale, err := normalizeLocale(cfg.MainConfig.Locale)
	if err != nil {
		return nil, err
	}
	cfg.MainConfig.Locale = locale
	return cfg, nil
}

// 与 gin.DebugMode / gin.ReleaseMode / gin.TestMode 对应
var validModes = []string{"debug", "release", "test"}

// normalizeMode 空值视为 release，其他值必须是 gin 支持的模式，否则 gin.SetMode 会 panic
func normalizeMode(mode string) (string, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		return "release", nil
	}
	for _, m := range validModes {
		if mode == m {
			return mode, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q, want one of %s", mode, strings.Join(validModes, ", "))
}

var validLocales = []string{"en", "zh"}

// normalizeLocale 空值视为 en
func normalizeLocale(locale string) (string, error) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return "en", nil
	}
	for _, l := range validLocales {
		if locale == l {
			return locale, nil
		}
	}
	return "", fmt.Errorf("invalid locale %q, want one of %s", locale, strings.Join(validLocales, ", "))
}

// Addr 返回监听地址 host:port
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.MainConfig.Host, c.MainConfig.Port)
}
