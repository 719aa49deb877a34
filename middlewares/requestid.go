package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	headerRequestID = "X-Request-Id"
	loggerKey       = "dialeradmin/logger"
)

// Logger - tags each request with an id and logs a summary line
func Logger(l *logrus.Logger) gin.HandlerFunc {

	return func(c *gin.Context) {

		start := time.Now()

		rid := c.GetHeader(headerRequestID)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.New().String()
		}
		c.Writer.Header().Set(headerRequestID, rid)

		entry := l.WithField("request_id", rid)
		c.Set(loggerKey, entry)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := logrus.Fields{
			"method":      c.Request.Method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}

		if len(c.Errors) > 0 {
			entry.WithFields(fields).WithField("errors", c.Errors.String()).Error("request")
			return
		}

		entry.WithFields(fields).Info("request")
	}
}

// Entry - request scoped log entry, falls back to l
func Entry(c *gin.Context, l *logrus.Logger) *logrus.Entry {
	if v, ok := c.Get(loggerKey); ok {
		if e, ok := v.(*logrus.Entry); ok {
			return e
		}
	}
	return logrus.NewEntry(l)
}
