package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhub/common/id"
	"basegraph.app/taskhub/common/logger"
)

const maxRequestIDLength = 128

// RequestID reuses the caller's id from header or generates one, echoes it back
// and attaches it to the request context log fields.
func RequestID(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		requestID := c.GetHeader(header)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			generated, err := id.NewRequestID()
			if err != nil {
				slog.WarnContext(ctx, "failed to generate request id", "error", err)
			}
			requestID = generated
		}

		if requestID != "" {
			c.Header(header, requestID)
			ctx = logger.WithLogFields(ctx, logger.LogFields{RequestID: &requestID})
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}
