package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	operatorIDKey = contextKey("operatorID")
)

// GetOperatorIDFromContext retrieves the authenticated operator ID.
// It returns the operator ID and a boolean indicating if it was found.
func GetOperatorIDFromContext(c *gin.Context) (string, bool) {
	return OperatorIDFromCtx(c.Request.Context())
}

// OperatorIDFromCtx retrieves the authenticated operator ID from a standard context.
func OperatorIDFromCtx(ctx context.Context) (string, bool) {
	operatorID, ok := ctx.Value(operatorIDKey).(string)
	if !ok || operatorID == "" {
		return "", false
	}
	return operatorID, true
}
