package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/devhubio/profile-service/adapters/event"
	"github.com/devhubio/profile-service/adapters/persistence"
	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type UpdateInfoUseCase struct {
	userRepo    user.Repository
	cache       *persistence.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpdateInfoUseCase(
	userRepo user.Repository,
	cache *persistence.ProfileCache,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *UpdateInfoUseCase {
	return &UpdateInfoUseCase{userRepo: userRepo, cache: cache, kafkaClient: kafkaClient, logger: log}
}

type UpdateInfoInput struct {
	UserID   uuid.UUID
	Name     string
	Headline string
	UserInfo string
}

type UpdateInfoOutput struct {
	User *user.User
}

// Execute updates name/headline/bio. Blank fields keep their stored
// values; a request where everything is blank is rejected outright.
func (uc *UpdateInfoUseCase) Execute(ctx context.Context, input UpdateInfoInput) (*UpdateInfoOutput, error) {
	name := strings.TrimSpace(input.Name)
	headline := strings.TrimSpace(input.Headline)
	userInfo := strings.TrimSpace(input.UserInfo)

	fields := map[string]any{}
	if name != "" {
		fields[user.ColName] = name
	}
	if headline != "" {
		fields[user.ColHeadline] = headline
	}
	if userInfo != "" {
		fields[user.ColUserInfo] = userInfo
	}
	if len(fields) == 0 {
		return nil, apperror.NewInvalidInput("All required fields must be provided", nil)
	}

	u, err := uc.userRepo.UpdateFields(ctx, input.UserID, fields)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, input.UserID)
	publishProfileEvent(uc.kafkaClient, uc.logger, event.ProfileEventPayload{
		EventType: event.ProfileEventTypeInfoUpdated,
		UserID:    input.UserID,
	})

	return &UpdateInfoOutput{User: u}, nil
}
