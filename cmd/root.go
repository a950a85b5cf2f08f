package cmd

import (
	"context"
	"fmt"

	"portfolio-assistant/dao"
	"portfolio-assistant/internal/config"
	"portfolio-assistant/internal/countapi"
	"portfolio-assistant/internal/log"
	"portfolio-assistant/model"
	"portfolio-assistant/service"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	conf    *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolio-assistant",
	Short: "Rule-based portfolio chat assistant",
	Long: `portfolio-assistant answers visitor questions about a portfolio owner
with canned, profile-driven replies. Run it as an HTTP/WebSocket service
or chat with it directly in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yaml", "config file (empty uses defaults and PORTFOLIO_* env only)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newViewsCmd())
}

// initConfig 读取配置文件与环境变量并初始化日志
func initConfig() error {
	c, err := config.Load(config.New(), cfgFile)
	if err != nil {
		return err
	}
	if err := log.Init(c.Log.Level, c.Log.Format, c.Log.OutputPath); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	conf = c
	return nil
}

func buildEngine(c *config.Config) (*service.Engine, error) {
	profile, err := model.LoadProfile(c.Profile.Path)
	if err != nil {
		return nil, err
	}
	engine, err := service.NewEngine(profile)
	if err != nil {
		return nil, err
	}
	log.Infow("[Engine] 个人资料加载成功", "name", profile.Name, "path", c.Profile.Path)
	return engine, nil
}

func typingConfig(c *config.Config) service.TypingConfig {
	return service.TypingConfig{
		Base:    c.Chat.TypingBase,
		PerChar: c.Chat.TypingPerChar,
		Max:     c.Chat.TypingMax,
	}
}

// store 会话存储同时提供本地访问计数
type store interface {
	service.SessionStore
	service.LocalCounter
}

// openStore 启用 Redis 时连接 Redis，否则使用进程内存储
func openStore(ctx context.Context, c *config.Config) (store, func(), error) {
	if !c.Redis.Enabled {
		log.Info("[Store] 使用内存存储")
		return dao.NewMemoryStore(), func() {}, nil
	}

	rs := dao.NewRedisStore(c.Redis.Addr, c.Redis.Password, c.Redis.DB, c.Session.KeyPrefix, c.Session.TTL)
	if err := rs.Ping(ctx); err != nil {
		_ = rs.Close()
		return nil, nil, fmt.Errorf("连接 Redis 失败: %w", err)
	}
	log.Infow("[Store] 使用 Redis 存储", "addr", c.Redis.Addr)
	return rs, func() { _ = rs.Close() }, nil
}

func newViewCounter(c *config.Config, local service.LocalCounter) *service.ViewCounter {
	var remote service.RemoteCounter
	if c.ViewCounter.Enabled {
		remote = countapi.NewClient(c.ViewCounter.BaseURL, c.ViewCounter.Namespace, c.ViewCounter.Key, c.ViewCounter.Timeout)
	}
	return service.NewViewCounter(remote, local, c.ViewCounter.LocalKey)
}
