package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port         int    `yaml:"port"`
	Mode         string `yaml:"mode"`
	ReadTimeout  int    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout" mapstructure:"write_timeout"`
}

type Logger struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// MySQLConfig 数据库配置
type MySQLConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	DBName       string `yaml:"dbname"`
	MaxOpenConns int    `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
}

// RedisConfig Redis配置（会话与购物车存储）
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Database struct {
	Mysql MySQLConfig `yaml:"mysql"`
	Redis RedisConfig `yaml:"redis"`
}

// AdminConfig 后台管理配置：单一共享口令，明文比较
type AdminConfig struct {
	Password string `yaml:"password"`
}

// JWTConfig 管理员会话令牌配置
type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours" mapstructure:"expire_hours"`
}

// SessionConfig 购物会话配置
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" mapstructure:"cookie_name"`
	TTLHours   int    `yaml:"ttl_hours" mapstructure:"ttl_hours"`
}

// MQConfig RabbitMQ配置（订单事件发布，可选）
type MQConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Exchange        string `yaml:"exchange"`
	ChannelPoolSize int    `yaml:"channel_pool_size" mapstructure:"channel_pool_size"`
}

// RateLimitRule 单个限流规则
type RateLimitRule struct {
	RPS   int `yaml:"rps" mapstructure:"rps"`
	Burst int `yaml:"burst" mapstructure:"burst"`
}

// RateLimitsConfig 多路由限流配置
type RateLimitsConfig struct {
	Global   RateLimitRule `yaml:"global" mapstructure:"global"`
	Checkout RateLimitRule `yaml:"checkout" mapstructure:"checkout"`
}

// Config 总配置结构体，嵌套所有子配置
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   Database         `yaml:"database"`
	Admin      AdminConfig      `yaml:"admin"`
	JWT        JWTConfig        `yaml:"jwt"`
	Session    SessionConfig    `yaml:"session"`
	Logger     Logger           `yaml:"log" mapstructure:"log"`
	MQ         MQConfig         `yaml:"mq"`
	RateLimits RateLimitsConfig `yaml:"rate_limits" mapstructure:"rate_limits"`
}

func InitConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败:%v", err)
	}

	var globalConfig Config
	if err := viper.Unmarshal(&globalConfig); err != nil {
		return nil, fmt.Errorf("解析配置文件失败:%v", err)
	}

	applyDefaults(&globalConfig)

	return &globalConfig, nil
}

// LoadConfig 加载配置文件并返回配置对象，默认加载config.yaml
func LoadConfig() (*Config, error) {
	cfg, err := InitConfig("config/config.yaml")
	if err != nil {
		// 尝试上级目录（cmd/* 下启动时）
		cfg, err = InitConfig("../../config/config.yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %v", err)
		}
	}

	return cfg, nil
}

// applyDefaults 补充默认值避免零值导致意外无限制或过度阻塞
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.RateLimits.Global.RPS == 0 {
		cfg.RateLimits.Global.RPS = 1000
	}
	if cfg.RateLimits.Global.Burst == 0 {
		cfg.RateLimits.Global.Burst = 2000
	}
	if cfg.RateLimits.Checkout.RPS == 0 {
		cfg.RateLimits.Checkout.RPS = 100
	}
	if cfg.RateLimits.Checkout.Burst == 0 {
		cfg.RateLimits.Checkout.Burst = 200
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "shop_session"
	}
	if cfg.Session.TTLHours <= 0 {
		cfg.Session.TTLHours = 24
	}
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 12
	}
	if cfg.MQ.ChannelPoolSize <= 0 {
		cfg.MQ.ChannelPoolSize = 4
	}
	if cfg.MQ.Exchange == "" {
		cfg.MQ.Exchange = "shop.orders"
	}
}
