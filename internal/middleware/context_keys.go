package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of the keys this package stores in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	sellerCtxKey = contextKey("seller")
)

// RequestIDHeader carries the request correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

// IdentityStub stores a fixed seller identity on every request.
// There is no authentication; the configured name stands in for the caller.
func IdentityStub(seller string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), sellerCtxKey, seller)
		logger := GetLoggerFromCtx(ctx).With(slog.String("seller", seller))
		c.Request = c.Request.WithContext(WithLogger(ctx, logger))
		c.Next()
	}
}

// GetSellerFromContext retrieves the caller identity set by IdentityStub.
func GetSellerFromContext(c *gin.Context) (string, bool) {
	seller, ok := c.Request.Context().Value(sellerCtxKey).(string)
	if !ok || seller == "" {
		return "", false
	}
	return seller, true
}
