package experience

import (
	"context"

	"github.com/google/uuid"

	"github.com/devhubio/profile-service/adapters/event"
	"github.com/devhubio/profile-service/adapters/persistence"
	domain "github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/pkg/logger"
)

type DeleteExperienceUseCase struct {
	expRepo     domain.Repository
	cache       *persistence.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeleteExperienceUseCase(
	expRepo domain.Repository,
	cache *persistence.ProfileCache,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *DeleteExperienceUseCase {
	return &DeleteExperienceUseCase{expRepo: expRepo, cache: cache, kafkaClient: kafkaClient, logger: log}
}

type DeleteExperienceInput struct {
	UserID       uuid.UUID
	ExperienceID uuid.UUID
}

// Execute deletes one experience. The delete is scoped to the calling
// user, so a row owned by someone else reports not-found rather than
// leaking its existence.
func (uc *DeleteExperienceUseCase) Execute(ctx context.Context, input DeleteExperienceInput) error {
	if err := uc.expRepo.Delete(ctx, input.ExperienceID, input.UserID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, input.UserID)
	publishExperienceEvent(uc.kafkaClient, uc.logger, event.ProfileEventPayload{
		EventType:    event.ProfileEventTypeExperienceDeleted,
		UserID:       input.UserID,
		ExperienceID: &input.ExperienceID,
	})

	return nil
}
