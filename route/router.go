package route

import (
	"portfolio-assistant/api"
	"portfolio-assistant/service"

	"github.com/gin-gonic/gin"
)

// Register 注册全部路由，allowedOrigins 同时用于 WebSocket 握手的来源校验
func Register(r *gin.Engine, chatSvc *service.ChatService, views *service.ViewCounter, allowedOrigins []string) {

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/profile", api.ProfileHandler(chatSvc.Engine()))

	// 聊天接口分组
	chatGroup := r.Group("/chat")
	{
		chatGroup.POST("", api.ChatHandler(chatSvc))
		chatGroup.POST("/quick-reply", api.QuickReplyHandler(chatSvc))
		chatGroup.GET("/suggestions", api.SuggestionsHandler(chatSvc.Engine()))
		chatGroup.POST("/sessions", api.StartSessionHandler(chatSvc))
		chatGroup.GET("/sessions/:id", api.GetSessionHandler(chatSvc))
		chatGroup.DELETE("/sessions/:id", api.DeleteSessionHandler(chatSvc))
		chatGroup.GET("/ws", api.WSHandler(chatSvc, allowedOrigins))
	}

	viewsGroup := r.Group("/views")
	{
		viewsGroup.POST("/hit", api.ViewHitHandler(views))
	}
}
