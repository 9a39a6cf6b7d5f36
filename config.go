package tinysoft

import (
	"github.com/kelseyhightower/envconfig"
)

// 天软服务端固定接入点
const (
	DefaultHost = "tsl.tinysoft.com.cn"
	DefaultPort = 443
)

// DatafeedConfig 数据服务配置
type DatafeedConfig struct {
	// 认证信息
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`

	// 服务器地址
	Host string `envconfig:"HOST" default:"tsl.tinysoft.com.cn"`
	Port int    `envconfig:"PORT" default:"443"`

	// 日志配置
	LogConfig LogConfig `ignored:"true"`

	// 会话建立函数，由宿主平台注入具体的天软客户端实现
	Dial DialFunc `ignored:"true"`
}

// DefaultDatafeedConfig 默认配置
func DefaultDatafeedConfig(username, password string) DatafeedConfig {
	return DatafeedConfig{
		Username: username,
		Password: password,
		Host:     DefaultHost,
		Port:     DefaultPort,
		LogConfig: LogConfig{
			Level:       "info",
			OutputPath:  "stdout",
			Development: false,
		},
	}
}

// DatafeedConfigFromEnv 从环境变量读取配置（TSL_USERNAME / TSL_PASSWORD 等）
func DatafeedConfigFromEnv() (DatafeedConfig, error) {
	cfg := DefaultDatafeedConfig("", "")
	if err := envconfig.Process("tsl", &cfg); err != nil {
		return DatafeedConfig{}, NewError("DatafeedConfigFromEnv", err)
	}
	return cfg, nil
}

// DatafeedOption 配置选项函数
type DatafeedOption func(*DatafeedConfig)

// WithDial 设置会话建立函数
func WithDial(dial DialFunc) DatafeedOption {
	return func(c *DatafeedConfig) {
		c.Dial = dial
	}
}

// WithEndpoint 设置服务器地址
func WithEndpoint(host string, port int) DatafeedOption {
	return func(c *DatafeedConfig) {
		c.Host = host
		c.Port = port
	}
}

// WithLogLevel 设置日志级别
func WithLogLevel(level string) DatafeedOption {
	return func(c *DatafeedConfig) {
		c.LogConfig.Level = level
	}
}

// WithDevelopment 设置开发模式
func WithDevelopment(development bool) DatafeedOption {
	return func(c *DatafeedConfig) {
		c.LogConfig.Development = development
	}
}
