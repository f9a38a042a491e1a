package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// RequestIDHeader is read from and echoed back on every request. The same
// value is forwarded to the gRPC service.
const RequestIDHeader = "X-Request-ID"

// requestLogger assigns a request id, attaches it and the client address to
// the outgoing gRPC metadata and logs one line per request.
func (g *Gateway) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		ctx := metadata.AppendToOutgoingContext(c.Request.Context(),
			"x-request-id", id,
			"x-forwarded-for", c.ClientIP(),
		)
		c.Request = c.Request.WithContext(ctx)

		started := g.now()
		c.Next()

		g.logger.Info(ctx, "http request",
			"request_id", id,
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", g.now().Sub(started),
		)
	}
}
