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

type UpdateLinksUseCase struct {
	userRepo    user.Repository
	cache       *persistence.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpdateLinksUseCase(
	userRepo user.Repository,
	cache *persistence.ProfileCache,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *UpdateLinksUseCase {
	return &UpdateLinksUseCase{userRepo: userRepo, cache: cache, kafkaClient: kafkaClient, logger: log}
}

type UpdateLinksInput struct {
	UserID        uuid.UUID
	GithubURL     *string
	LinkedinURL   *string
	LeetcodeURL   *string
	CodeForcesURL *string
	MediumURL     *string
	PortfolioURL  *string
}

type UpdateLinksOutput struct {
	User *user.User
}

// Execute updates any subset of the six platform links. Omitted or
// blank fields keep their stored values; the request is rejected only
// when all six are absent.
func (uc *UpdateLinksUseCase) Execute(ctx context.Context, input UpdateLinksInput) (*UpdateLinksOutput, error) {
	fields := map[string]any{}
	put := func(col string, v *string) {
		if v == nil {
			return
		}
		if trimmed := strings.TrimSpace(*v); trimmed != "" {
			fields[col] = trimmed
		}
	}
	put(user.ColGithubURL, input.GithubURL)
	put(user.ColLinkedinURL, input.LinkedinURL)
	put(user.ColLeetcodeURL, input.LeetcodeURL)
	put(user.ColCodeForcesURL, input.CodeForcesURL)
	put(user.ColMediumURL, input.MediumURL)
	put(user.ColPortfolioURL, input.PortfolioURL)

	if len(fields) == 0 {
		return nil, apperror.NewInvalidInput("At least one field is required", nil)
	}

	u, err := uc.userRepo.UpdateFields(ctx, input.UserID, fields)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, input.UserID)
	publishProfileEvent(uc.kafkaClient, uc.logger, event.ProfileEventPayload{
		EventType: event.ProfileEventTypeLinksUpdated,
		UserID:    input.UserID,
	})

	return &UpdateLinksOutput{User: u}, nil
}
