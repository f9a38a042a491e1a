package gateway

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/userdirectory/internal/server/mapper"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// errorView is the JSON body of every non-2xx response.
type errorView struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

// httpStatus maps a gRPC status code onto an HTTP status and reports
// whether the gRPC message may be shown to the caller.
func httpStatus(code codes.Code) (int, bool) {
	switch code {
	case codes.NotFound:
		return http.StatusNotFound, true
	case codes.InvalidArgument:
		return http.StatusBadRequest, true
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests, true
	case codes.Unavailable:
		return http.StatusServiceUnavailable, false
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout, false
	default:
		return http.StatusInternalServerError, false
	}
}

func (g *Gateway) writeError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, errorView{
		Timestamp: mapper.FormatTimestamp(g.now()),
		Status:    code,
		Error:     http.StatusText(code),
		Message:   message,
	})
}

// writeRPCError translates an error returned by the gRPC client.
func (g *Gateway) writeRPCError(c *gin.Context, err error) {
	st := status.Convert(err)
	code, public := httpStatus(st.Code())

	message := st.Message()
	if !public {
		g.logger.Error(c.Request.Context(), "upstream call failed", "path", c.FullPath(), "code", st.Code().String(), "error", st.Message())
		message = unexpectedErrorMessage
		if code == http.StatusServiceUnavailable {
			message = "User service unavailable"
		}
	}

	g.writeError(c, code, message)
}

func isEOF(err error) bool { return errors.Is(err, io.EOF) }
