package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// Logger логирует каждый запрос. Id запроса берется из заголовка X-Request-ID или генерируется
// и возвращается клиенту в том же заголовке.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithField("component", "http")

	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := logrus.Fields{
			"requestID": requestID,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
		}
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			fields["userID"] = userID
		}

		le := entry.WithFields(fields)
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			le.WithError(errs.Last()).Error("request failed")
			return
		}
		if errs := c.Errors.ByType(gin.ErrorTypePublic); len(errs) > 0 {
			le = le.WithField("reason", errs.Last().Error())
		}
		le.Info("request")
	}
}
