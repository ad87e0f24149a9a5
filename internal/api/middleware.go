package api

import (
	"github.com/Mohd-Saddam/fx-ohlc-microservice/pkg/util"
	"github.com/gin-gonic/gin"
)

// RequestID attaches a request id to the request context so log lines
// from one request can be correlated. An inbound X-Request-Id header is
// honored, otherwise a fresh id is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := util.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-Id"))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
