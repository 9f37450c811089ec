package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextEvaluatorID is the gin context key holding the authenticated evaluator id.
const ContextEvaluatorID = "evaluator_id"

// Middleware validates the Bearer token and stores the evaluator id in the
// request context.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing or malformed Authorization header"})
			return
		}
		claims, err := ValidateToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}
		ctx.Set(ContextEvaluatorID, claims.EvaluatorID)
		ctx.Next()
	}
}
