package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devhubio/profile-service/adapters/event"
	"github.com/devhubio/profile-service/adapters/persistence"
	"github.com/devhubio/profile-service/internal/application/service"
	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type DeleteResumeUseCase struct {
	userRepo    user.Repository
	uploader    service.Uploader
	cache       *persistence.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeleteResumeUseCase(
	userRepo user.Repository,
	uploader service.Uploader,
	cache *persistence.ProfileCache,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *DeleteResumeUseCase {
	return &DeleteResumeUseCase{
		userRepo:    userRepo,
		uploader:    uploader,
		cache:       cache,
		kafkaClient: kafkaClient,
		logger:      log,
	}
}

type DeleteResumeInput struct {
	UserID uuid.UUID
}

type DeleteResumeOutput struct {
	User *user.User
}

func (uc *DeleteResumeUseCase) Execute(ctx context.Context, input DeleteResumeInput) (*DeleteResumeOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if u.Resume == nil || *u.Resume == "" {
		return nil, apperror.NewInvalidInput("No resume to delete", nil)
	}

	if err := uc.uploader.DeleteByURL(ctx, *u.Resume); err != nil {
		uc.logger.Error("failed to delete resume blob", err,
			zap.String("user_id", input.UserID.String()))
		return nil, apperror.NewInternal("failed to delete resume file", err)
	}

	updated, err := uc.userRepo.UpdateFields(ctx, input.UserID, map[string]any{user.ColResume: nil})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, input.UserID)
	publishProfileEvent(uc.kafkaClient, uc.logger, event.ProfileEventPayload{
		EventType: event.ProfileEventTypeResumeDeleted,
		UserID:    input.UserID,
	})

	return &DeleteResumeOutput{User: updated}, nil
}
