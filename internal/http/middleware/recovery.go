package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"basegraph.app/taskhub/internal/http/response"
)

// Recovery turns a panic into the usual {"error": ...} 500 body and marks the
// request span as failed.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			ctx := c.Request.Context()
			panicErr := fmt.Errorf("panic: %v", recovered)

			span := trace.SpanFromContext(ctx)
			span.RecordError(panicErr, trace.WithStackTrace(true))
			span.SetStatus(codes.Error, "panic recovered")

			slog.ErrorContext(ctx, "panic recovered",
				"error", panicErr,
				"route", c.FullPath(),
				"stack", string(debug.Stack()),
			)

			_ = c.Error(panicErr)
			response.Abort(c, http.StatusInternalServerError, "internal server error")
		}()
		c.Next()
	}
}
