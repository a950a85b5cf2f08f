// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 与 configs/config.yaml 结构对应
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Session     SessionConfig     `mapstructure:"session"`
	Profile     ProfileConfig     `mapstructure:"profile"`
	Chat        ChatConfig        `mapstructure:"chat"`
	ViewCounter ViewCounterConfig `mapstructure:"view_counter"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig 未启用时会话与计数保存在进程内存中
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SessionConfig struct {
	KeyPrefix  string        `mapstructure:"key_prefix"`
	TTL        time.Duration `mapstructure:"ttl"`
	MaxRetries int           `mapstructure:"max_retries"`
}

type ProfileConfig struct {
	Path string `mapstructure:"path"`
}

// ChatConfig 模拟"正在输入"的延迟参数，只影响展示层
type ChatConfig struct {
	TypingBase    time.Duration `mapstructure:"typing_base"`
	TypingPerChar time.Duration `mapstructure:"typing_per_char"`
	TypingMax     time.Duration `mapstructure:"typing_max"`
}

type ViewCounterConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	BaseURL   string        `mapstructure:"base_url"`
	Namespace string        `mapstructure:"namespace"`
	Key       string        `mapstructure:"key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	LocalKey  string        `mapstructure:"local_key"`
}

// SetDefaults 注册所有默认值，配置文件缺省的字段以此为准
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("session.key_prefix", "portfolio:session:")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.max_retries", 3)
	v.SetDefault("profile.path", "configs/profile.yaml")
	v.SetDefault("chat.typing_base", 800*time.Millisecond)
	v.SetDefault("chat.typing_per_char", 10*time.Millisecond)
	v.SetDefault("chat.typing_max", 2500*time.Millisecond)
	v.SetDefault("view_counter.enabled", true)
	v.SetDefault("view_counter.base_url", "https://api.countapi.xyz")
	v.SetDefault("view_counter.namespace", "dhesuryakella-portfolio")
	v.SetDefault("view_counter.key", "visits")
	v.SetDefault("view_counter.timeout", 5*time.Second)
	v.SetDefault("view_counter.local_key", "portfolio_view_count")
}

// New 创建带默认值和环境变量覆盖（PORTFOLIO_ 前缀）的 viper 实例
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("portfolio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load 从指定路径读取 YAML 配置；path 为空时只使用默认值和环境变量
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("无法将配置解析到结构体中: %w", err)
	}
	if conf.Chat.TypingMax < conf.Chat.TypingBase {
		return nil, fmt.Errorf("chat.typing_max (%s) 小于 chat.typing_base (%s)", conf.Chat.TypingMax, conf.Chat.TypingBase)
	}
	return &conf, nil
}
