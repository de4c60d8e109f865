package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 主配置结构
type Config struct {
	App       App       `yaml:"app"`
	Server    Server    `yaml:"server"`
	Database  DB        `yaml:"database"`
	Cache     Cache     `yaml:"cache"`
	Auth      Auth      `yaml:"auth"`
	RateLimit Limit     `yaml:"rate_limit"`
	Log       Log       `yaml:"log"`
	ShortCode ShortCode `yaml:"shortcode"`
}

// 应用配置
type App struct {
	Name    string `yaml:"name" env:"APP_NAME"`
	Mode    string `yaml:"mode" env:"APP_MODE"`
	Version string `yaml:"version"`
	// BaseURL 用于拼接返回给客户端的短链接
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

// 服务器配置
type Server struct {
	Port            int      `yaml:"port" env:"PORT"`
	ReadTimeout     int      `yaml:"read_timeout"`
	WriteTimeout    int      `yaml:"write_timeout"`
	ShutdownTimeout int      `yaml:"shutdown_timeout"`
	TrustedProxies  []string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES" env-separator:","`
	AllowedOrigins  []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:","`
}

// 数据库配置
type DB struct {
	Driver          string `yaml:"driver" env:"DB_DRIVER"`
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            int    `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	Name            string `yaml:"name" env:"DB_NAME"`
	Charset         string `yaml:"charset"`
	SSLMode         string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
	Path            string `yaml:"path" env:"DB_PATH"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
}

// 缓存配置（Redis），仅用于限流计数
type Cache struct {
	Host     string `yaml:"host" env:"REDIS_HOST"`
	Port     int    `yaml:"port" env:"REDIS_PORT"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
}

// 认证配置
type Auth struct {
	Secret          string `yaml:"secret" env:"JWT_SECRET"`
	Issuer          string `yaml:"issuer"`
	ExpirationHours int    `yaml:"expiration_hours"`
}

// 限流配置
type Limit struct {
	Enabled   bool     `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
	Requests  int64    `yaml:"requests_per_minute"`
	Burst     int64    `yaml:"burst"`
	SkipPaths []string `yaml:"skip_paths"`
}

// 日志配置
type Log struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	File       string `yaml:"file" env:"LOG_FILE"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// 短码配置
type ShortCode struct {
	Length      int `yaml:"length"`
	MaxAttempts int `yaml:"max_attempts"`
}

// 加载配置：YAML 文件 -> .env -> 环境变量覆盖 -> 默认值
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// 没有配置文件时只依赖环境变量
	default:
		return nil, err
	}

	// .env 不存在时忽略
	_ = godotenv.Load()

	if err := cleanenv.UpdateEnv(&cfg); err != nil {
		return nil, fmt.Errorf("读取环境变量失败: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "shorturl-analytics"
	}
	if c.App.Mode == "" {
		c.App.Mode = "development"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30
	}
	if c.App.BaseURL == "" {
		c.App.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "mysql"
	}
	if c.Database.Charset == "" {
		c.Database.Charset = "utf8mb4"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = c.App.Name
	}
	if c.Auth.ExpirationHours == 0 {
		c.Auth.ExpirationHours = 24
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 120
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.ShortCode.Length == 0 {
		c.ShortCode.Length = 7
	}
	if c.ShortCode.MaxAttempts == 0 {
		c.ShortCode.MaxAttempts = 5
	}
}

// Validate 检查必须的配置项
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.Database.Driver)
	}
	if c.Auth.Secret == "" {
		if c.IsProduction() {
			return errors.New("生产环境必须配置 auth.secret")
		}
		c.Auth.Secret = "dev-secret-change-me"
	}
	if c.ShortCode.Length < 4 {
		return fmt.Errorf("shortcode.length 过短: %d", c.ShortCode.Length)
	}
	return nil
}

// IsProduction 是否运行在生产模式
func (c *Config) IsProduction() bool {
	return c.App.Mode == "production"
}
