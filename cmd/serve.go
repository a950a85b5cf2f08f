package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-assistant/api"
	"portfolio-assistant/internal/log"
	"portfolio-assistant/route"
	"portfolio-assistant/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and WebSocket chat service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				conf.Server.Port = port
			}
			return runServe(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides server.port")
	return cmd
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer log.Sync()

	engine, err := buildEngine(conf)
	if err != nil {
		return err
	}
	st, closeStore, err := openStore(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	chatSvc := service.NewChatService(engine, st,
		service.WithTyping(typingConfig(conf)),
		service.WithMaxRetries(conf.Session.MaxRetries),
	)
	views := newViewCounter(conf, st)

	gin.SetMode(conf.Server.Mode)
	r := gin.New()
	r.Use(api.RequestLogger(), gin.Recovery(), api.CORS(conf.Server.AllowedOrigins))
	route.Register(r, chatSvc, views, conf.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", conf.Server.Port),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP 服务监听失败: %w", err)
	case <-quit:
	case <-ctx.Done():
	}
	log.Info("接收到停机信号，正在关闭服务...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP 服务器关闭失败: %w", err)
	}
	log.Info("服务已优雅关闭")
	return nil
}
