package experience

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devhubio/profile-service/adapters/event"
	"github.com/devhubio/profile-service/adapters/persistence"
	domain "github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type AddExperienceUseCase struct {
	expRepo     domain.Repository
	userRepo    user.Repository
	cache       *persistence.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewAddExperienceUseCase(
	expRepo domain.Repository,
	userRepo user.Repository,
	cache *persistence.ProfileCache,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *AddExperienceUseCase {
	return &AddExperienceUseCase{
		expRepo:     expRepo,
		userRepo:    userRepo,
		cache:       cache,
		kafkaClient: kafkaClient,
		logger:      log,
	}
}

type AddExperienceInput struct {
	UserID         uuid.UUID
	CompanyName    string
	JobTitle       string
	JobDescription string
	StartDate      *time.Time
	EndDate        *time.Time
	IsOngoing      string
	JobType        string
}

type AddExperienceOutput struct {
	Experience *domain.Experience
}

func (uc *AddExperienceUseCase) Execute(ctx context.Context, input AddExperienceInput) (*AddExperienceOutput, error) {
	companyName := strings.TrimSpace(input.CompanyName)
	jobTitle := strings.TrimSpace(input.JobTitle)
	jobDescription := strings.TrimSpace(input.JobDescription)

	jobType := domain.JobType(strings.TrimSpace(input.JobType))
	if !jobType.Valid() {
		return nil, apperror.NewInvalidInput("Invalid job type", nil)
	}

	isOngoing := domain.OngoingStatus(strings.TrimSpace(input.IsOngoing))
	if companyName == "" || jobTitle == "" || jobDescription == "" ||
		input.StartDate == nil || !isOngoing.Valid() {
		return nil, apperror.NewInvalidInput("All required fields must be provided", nil)
	}

	// The experience row carries a foreign key; surface a clean
	// not-found instead of a constraint violation.
	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	endDate := input.EndDate
	if isOngoing == domain.StatusOngoing {
		endDate = nil
	}

	exp := &domain.Experience{
		ID:             uuid.New(),
		UserID:         input.UserID,
		CompanyName:    companyName,
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		StartDate:      *input.StartDate,
		EndDate:        endDate,
		IsOngoing:      isOngoing,
		JobType:        jobType,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.expRepo.Save(ctx, exp); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, input.UserID)
	publishExperienceEvent(uc.kafkaClient, uc.logger, event.ProfileEventPayload{
		EventType:    event.ProfileEventTypeExperienceCreated,
		UserID:       input.UserID,
		ExperienceID: &exp.ID,
	})

	return &AddExperienceOutput{Experience: exp}, nil
}
