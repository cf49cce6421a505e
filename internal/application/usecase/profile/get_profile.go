package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/devhubio/profile-service/adapters/persistence"
	"github.com/devhubio/profile-service/internal/domain/experience"
	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/logger"
)

type GetProfileUseCase struct {
	userRepo user.Repository
	expRepo  experience.Repository
	cache    *persistence.ProfileCache
	logger   logger.Logger
}

func NewGetProfileUseCase(
	userRepo user.Repository,
	expRepo experience.Repository,
	cache *persistence.ProfileCache,
	log logger.Logger,
) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, expRepo: expRepo, cache: cache, logger: log}
}

type GetProfileInput struct {
	UserID uuid.UUID
}

type GetProfileOutput struct {
	User        *user.User
	Experiences []*experience.Experience
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	if cached, ok := uc.cache.Get(ctx, input.UserID); ok {
		return &GetProfileOutput{User: cached.User, Experiences: cached.Experiences}, nil
	}

	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	experiences, err := uc.expRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, input.UserID, &persistence.CachedProfile{User: u, Experiences: experiences})

	return &GetProfileOutput{User: u, Experiences: experiences}, nil
}
