package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/stpnv0/RoomBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
					logger.Any("error", err),
					logger.String("request_id", requestIDFrom(c)),
					logger.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Message:         "Internal Server Error",
					DetailedMessage: "internal server error",
					ErrorTime:       time.Now(),
				})
			}
		}()

		c.Next()
	}
}
