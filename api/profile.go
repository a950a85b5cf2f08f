package api

import (
	"net/http"

	"portfolio-assistant/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler 返回个人资料，供页面渲染项目列表等静态内容
func ProfileHandler(engine *service.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Profile())
	}
}

// SuggestionsHandler 查询某个话题的快捷回复，topic 为空时返回根菜单
func SuggestionsHandler(engine *service.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		topic := c.Query("topic")
		if topic == "" {
			c.JSON(http.StatusOK, gin.H{"suggestions": engine.RootMenu()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"suggestions": engine.Suggestions(topic)})
	}
}
