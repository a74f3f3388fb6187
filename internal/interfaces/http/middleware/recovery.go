package middleware

import (
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"crest/internal/shared/logger"
	"crest/internal/shared/utils"
)

// Recovery turns handler panics into a 500 response with a logged stack.
// Broken client connections are logged without a response; writing to a
// dead socket would just panic again.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if isBrokenConnection(recovered) {
			logger.Error("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		logger.Error("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", redactedRequestHeaders(c),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
	})
}

// redactedRequestHeaders dumps the request headers with the Authorization
// value masked, so tokens never land in the log.
func redactedRequestHeaders(c *gin.Context) []string {
	raw, _ := httputil.DumpRequest(c.Request, false)
	headers := strings.Split(string(raw), "\r\n")
	for i, header := range headers {
		name, _, ok := strings.Cut(header, ":")
		if ok && name == "Authorization" {
			headers[i] = name + ": *"
		}
	}
	return headers
}

func isBrokenConnection(err interface{}) bool {
	ne, ok := err.(*net.OpError)
	if !ok {
		return false
	}
	se, ok := ne.Err.(*os.SyscallError)
	if !ok {
		return false
	}

	errStr := strings.ToLower(se.Error())
	for _, s := range []string{"connection reset by peer", "broken pipe", "connection refused"} {
		if strings.Contains(errStr, s) {
			return true
		}
	}
	return false
}
