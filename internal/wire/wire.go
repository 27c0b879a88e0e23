package wire

import (
	"Inkstone/internal/api"
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/handler"
	"Inkstone/internal/job"
	"Inkstone/internal/pkg/cron"
	"Inkstone/internal/repository"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer holds every top level component the app runs with.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	postService := service.NewPostService(postRepo, userRepo)
	roleService := service.NewRoleService(roleRepo)

	handlers := &api.HandlersGroup{
		AuthHandler: handler.NewAuthHandler(authService),
		UserHandler: handler.NewUserHandler(userService),
		PostHandler: handler.NewPostHandler(postService),
		RoleHandler: handler.NewRoleHandler(roleService),
	}

	router := api.SetupRouter(handlers, userRepo)

	cronMgr := cron.NewCronManager(job.NewUploadCleanupJob(postRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
