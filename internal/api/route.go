package api

import (
	"Inkstone/internal/api/middleware"
	"Inkstone/internal/pkg/logger"
	"Inkstone/internal/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userRepo repository.UserRepo) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api/v1")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/access-token", group.AuthHandler.AccessToken)
			authGroup.POST("/refresh-token", group.AuthHandler.RefreshToken)
			authGroup.POST("/password-recovery/:email", group.AuthHandler.RecoverPassword)
			authGroup.POST("/reset-password", group.AuthHandler.ResetPassword)

			loggedIn := authGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware(userRepo))
			{
				loggedIn.POST("/logout", group.AuthHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/user")
		{
			// open signup
			userGroup.POST("/create", group.UserHandler.CreateUser)

			loggedIn := userGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware(userRepo))
			{
				loggedIn.GET("/me", group.UserHandler.GetSelf)
				loggedIn.PATCH("/me", group.UserHandler.UpdateSelf)
				loggedIn.PATCH("/me/password", group.UserHandler.ChangePassword)
				loggedIn.DELETE("/me", group.UserHandler.DeleteSelf)
				loggedIn.GET("/:id", group.UserHandler.GetUser)
			}

			adminGroup := loggedIn.Group("")
			adminGroup.Use(middleware.RequireSuperuser())
			{
				adminGroup.GET("", group.UserHandler.ListUsers)
				adminGroup.PATCH("/:id", group.UserHandler.AdminUpdateUser)
				adminGroup.DELETE("/:id", group.UserHandler.AdminDeleteUser)
			}
		}

		postGroup := apiGroup.Group("/post")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware(userRepo))
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:id", group.PostHandler.GetPost)
				authOptGroup.GET("/slug/:slug", group.PostHandler.GetPostBySlug)
				authOptGroup.GET("/author/:nickname", group.PostHandler.GetPostsByAuthor)
				authOptGroup.GET("/tag/:tag", group.PostHandler.GetPostsByTag)
			}

			loggedIn := postGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware(userRepo))
			{
				loggedIn.POST("", group.PostHandler.CreatePost)
				loggedIn.PUT("/:id", group.PostHandler.UpdatePost)
				loggedIn.DELETE("/:id", group.PostHandler.DeletePost)
			}
		}

		roleGroup := apiGroup.Group("/role")
		roleGroup.Use(middleware.AuthMiddleware(userRepo), middleware.RequireSuperuser())
		{
			roleGroup.GET("", group.RoleHandler.ListRoles)
		}
	}

	return r
}
