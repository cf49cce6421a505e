package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devhubio/profile-service/adapters/event"
	httpAdapter "github.com/devhubio/profile-service/adapters/http"
	"github.com/devhubio/profile-service/adapters/media_storage"
	"github.com/devhubio/profile-service/adapters/persistence"
	experienceUC "github.com/devhubio/profile-service/internal/application/usecase/experience"
	profileUC "github.com/devhubio/profile-service/internal/application/usecase/profile"
	"github.com/devhubio/profile-service/internal/config"
	"github.com/devhubio/profile-service/pkg/auth"
	"github.com/devhubio/profile-service/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start Profile API Server...")

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	profileCache := persistence.NewProfileCache(redisClient, cfg.Redis.CacheTTL, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize uploader", err)
	}

	// Use Cases
	getProfileUseCase := profileUC.NewGetProfileUseCase(userRepo, experienceRepo, profileCache, appLogger)
	updateInfoUseCase := profileUC.NewUpdateInfoUseCase(userRepo, profileCache, kafkaClient, appLogger)
	updateLinksUseCase := profileUC.NewUpdateLinksUseCase(userRepo, profileCache, kafkaClient, appLogger)
	updateMediaUseCase := profileUC.NewUpdateMediaUseCase(userRepo, uploader, profileCache, kafkaClient, appLogger)
	deleteResumeUseCase := profileUC.NewDeleteResumeUseCase(userRepo, uploader, profileCache, kafkaClient, appLogger)

	addExperienceUseCase := experienceUC.NewAddExperienceUseCase(experienceRepo, userRepo, profileCache, kafkaClient, appLogger)
	updateExperienceUseCase := experienceUC.NewUpdateExperienceUseCase(experienceRepo, profileCache, kafkaClient, appLogger)
	deleteExperienceUseCase := experienceUC.NewDeleteExperienceUseCase(experienceRepo, profileCache, kafkaClient, appLogger)

	// HTTP Handlers
	profileHandler := httpAdapter.NewProfileHandler(
		getProfileUseCase,
		updateInfoUseCase,
		updateLinksUseCase,
		updateMediaUseCase,
		deleteResumeUseCase,
		appLogger,
	)
	experienceHandler := httpAdapter.NewExperienceHandler(
		addExperienceUseCase,
		updateExperienceUseCase,
		deleteExperienceUseCase,
		appLogger,
	)

	router := httpAdapter.NewRouter(profileHandler, experienceHandler, jwtSvc, appLogger)

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
