package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the gin context key holding the request id.
const ContextKeyRequestID = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id for log correlation. An id
// supplied by the caller is kept; otherwise one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, rid)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}

// Logger writes one line per request: status, method, route, latency and
// the request id. The route label is the registered pattern, not the raw
// path, so ids do not explode the log vocabulary. Handler errors collected
// by gin are appended.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		suffix := ""
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			suffix = " errors=" + strings.Join(errs.Errors(), "; ")
		}
		log.Printf("%d %s %s %s rid=%s%s",
			c.Writer.Status(), c.Request.Method, route,
			time.Since(start), c.GetString(ContextKeyRequestID), suffix)
	}
}

// Recovery turns a handler panic into a 500 response in the standard
// error envelope, with the request id on the log line.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered rid=%s: %v", c.GetString(ContextKeyRequestID), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "an internal error occurred",
			},
		})
	})
}
