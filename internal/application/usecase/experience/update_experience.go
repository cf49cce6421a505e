package experience

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devhubio/profile-service/adapters/event"
	"github.com/devhubio/profile-service/adapters/persistence"
	domain "github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type UpdateExperienceUseCase struct {
	expRepo     domain.Repository
	cache       *persistence.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpdateExperienceUseCase(
	expRepo domain.Repository,
	cache *persistence.ProfileCache,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *UpdateExperienceUseCase {
	return &UpdateExperienceUseCase{expRepo: expRepo, cache: cache, kafkaClient: kafkaClient, logger: log}
}

type UpdateExperienceInput struct {
	UserID         uuid.UUID
	ExperienceID   uuid.UUID
	CompanyName    *string
	JobTitle       *string
	JobDescription *string
	StartDate      *time.Time
	EndDate        *time.Time
	IsOngoing      *string
	JobType        *string
}

type UpdateExperienceOutput struct {
	Experience *domain.Experience
}

// Execute applies a partial update to one experience, addressed by its
// id and scoped to the calling user. Blank strings count as absent.
func (uc *UpdateExperienceUseCase) Execute(ctx context.Context, input UpdateExperienceInput) (*UpdateExperienceOutput, error) {
	fields := map[string]any{}

	putString := func(col string, v *string) {
		if v == nil {
			return
		}
		if trimmed := strings.TrimSpace(*v); trimmed != "" {
			fields[col] = trimmed
		}
	}
	putString(domain.ColCompanyName, input.CompanyName)
	putString(domain.ColJobTitle, input.JobTitle)
	putString(domain.ColJobDescription, input.JobDescription)

	if input.StartDate != nil {
		fields[domain.ColStartDate] = *input.StartDate
	}
	if input.EndDate != nil {
		fields[domain.ColEndDate] = *input.EndDate
	}

	if input.JobType != nil {
		jobType := domain.JobType(strings.TrimSpace(*input.JobType))
		if !jobType.Valid() {
			return nil, apperror.NewInvalidInput("Invalid job type", nil)
		}
		fields[domain.ColJobType] = jobType
	}

	var isOngoing *domain.OngoingStatus
	if input.IsOngoing != nil {
		status := domain.OngoingStatus(strings.TrimSpace(*input.IsOngoing))
		if !status.Valid() {
			return nil, apperror.NewInvalidInput("Invalid ongoing status", nil)
		}
		isOngoing = &status
		fields[domain.ColIsOngoing] = status
	}

	if len(fields) == 0 {
		return nil, apperror.NewInvalidInput("At least one field is required", nil)
	}

	existing, err := uc.expRepo.FindByID(ctx, input.ExperienceID, input.UserID)
	if err != nil {
		return nil, err
	}

	// An ongoing position never carries an end date, whether the
	// status comes from this request or from the stored row.
	final := existing.IsOngoing
	if isOngoing != nil {
		final = *isOngoing
	}
	if final == domain.StatusOngoing {
		fields[domain.ColEndDate] = nil
	}

	updated, err := uc.expRepo.UpdateFields(ctx, input.ExperienceID, input.UserID, fields)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, input.UserID)
	publishExperienceEvent(uc.kafkaClient, uc.logger, event.ProfileEventPayload{
		EventType:    event.ProfileEventTypeExperienceUpdated,
		UserID:       input.UserID,
		ExperienceID: &input.ExperienceID,
	})

	return &UpdateExperienceOutput{Experience: updated}, nil
}
