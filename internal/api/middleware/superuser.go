package middleware

import (
	"Inkstone/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireSuperuser guards endpoints reserved for superuser accounts. It runs
// after AuthMiddleware and relies on the flag it sets.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_superuser") {
			response.Fail(c, response.Forbidden, "the user doesn't have enough privileges")
			c.Abort()
			return
		}
		c.Next()
	}
}
