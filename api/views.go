package api

import (
	"net/http"

	"portfolio-assistant/service"

	"github.com/gin-gonic/gin"
)

func ViewHitHandler(counter *service.ViewCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := counter.Hit(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
