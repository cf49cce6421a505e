package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devhubio/profile-service/pkg/auth"
	"github.com/devhubio/profile-service/pkg/logger"
)

// NewRouter mounts the profile surface. Route names are kept as the web
// client already calls them, casing included.
func NewRouter(
	profileHandler *ProfileHandler,
	experienceHandler *ExperienceHandler,
	jwtSvc *auth.JWTService,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		user := api.Group("/user")
		user.Use(AuthMiddleware(jwtSvc))
		{
			user.GET("/get-profile", profileHandler.GetFullProfile)
			user.PUT("/update-user-info", profileHandler.UpdateUserInfo)
			user.PUT("/update-user-links", profileHandler.UpdateUserLinks)
			user.POST("/upload-resume", profileHandler.UploadResume)
			user.DELETE("/delete-resume", profileHandler.DeleteResume)
			user.PUT("/update-ProfilePic", profileHandler.UpdateProfilePic)
			user.PUT("/update-banner", profileHandler.UpdateBanner)

			user.POST("/add-experience", experienceHandler.AddExperience)
			user.PUT("/update-experience/:experienceId", experienceHandler.UpdateExperience)
			user.DELETE("/delete-experience/:experienceId", experienceHandler.DeleteExperience)
		}
	}

	return router
}
