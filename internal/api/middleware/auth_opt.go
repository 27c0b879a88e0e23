package middleware

import (
	"Inkstone/internal/pkg/security"
	"Inkstone/internal/repository"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware parses the bearer token when one is present; a
// missing or invalid token leaves the request anonymous with user_id 0.
func AuthOptionalMiddleware(userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		anonymous := func() {
			c.Set("user_id", uint64(0))
			c.Set("is_superuser", false)
			c.Next()
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			anonymous()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateToken(token, security.TokenTypeAccess)
		if err != nil {
			anonymous()
			return
		}
		userID, err := security.SubjectUserID(claims)
		if err != nil {
			anonymous()
			return
		}

		user, err := userRepo.GetUserByID(c.Request.Context(), userID)
		if err != nil || user == nil || !user.IsActive {
			anonymous()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("is_superuser", user.IsSuperuser)

		newCtx := context.WithValue(c.Request.Context(), "user_id", user.ID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
