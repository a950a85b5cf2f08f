package api

import (
	"errors"
	"net/http"

	"portfolio-assistant/internal/log"
	"portfolio-assistant/model"
	"portfolio-assistant/service"

	"github.com/gin-gonic/gin"
)

func StartSessionHandler(chatSvc *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := chatSvc.StartSession(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func ChatHandler(chatSvc *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}

		resp, err := chatSvc.HandleMessage(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func QuickReplyHandler(chatSvc *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.QuickReplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}

		resp, err := chatSvc.HandleQuickReply(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func GetSessionHandler(chatSvc *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := chatSvc.GetSession(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func DeleteSessionHandler(chatSvc *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := chatSvc.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// writeError 把业务错误映射成 HTTP 状态码
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Error("[API] 请求处理失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
