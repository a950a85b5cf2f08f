package api

import (
	"slices"
	"time"

	"portfolio-assistant/internal/log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RequestLogger 记录每个请求的状态码、耗时和路径
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		log.Infow("HTTP Request Log",
			"statusCode", c.Writer.Status(),
			"latency", time.Since(startTime).String(),
			"clientIP", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}
}

// CORS 允许静态站点跨域调用聊天接口；origins 为空或包含 "*" 时放开所有来源
func CORS(origins []string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}
	if allowsAllOrigins(origins) {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}
	return cors.New(conf)
}

func allowsAllOrigins(origins []string) bool {
	return len(origins) == 0 || slices.Contains(origins, "*")
}
