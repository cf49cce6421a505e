package profile

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/devhubio/profile-service/adapters/event"
	"github.com/devhubio/profile-service/adapters/persistence"
	"github.com/devhubio/profile-service/internal/application/service"
	"github.com/devhubio/profile-service/internal/domain/user"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

// AssetKind selects which profile asset an upload replaces. Folder and
// blob naming follow the conventions already present in the media
// library, so existing assets stay reachable.
type AssetKind int

const (
	AssetProfilePicture AssetKind = iota
	AssetBanner
	AssetResume
)

type assetLayout struct {
	folder string
	suffix string
	column string
}

func (k AssetKind) layout() assetLayout {
	switch k {
	case AssetBanner:
		return assetLayout{folder: "Profile-Banner", suffix: "Banner", column: user.ColBannerURL}
	case AssetResume:
		return assetLayout{folder: "Resume", suffix: "resume", column: user.ColResume}
	default:
		return assetLayout{folder: "ProfilePic", suffix: "Profile-Picture", column: user.ColProfileURL}
	}
}

type UpdateMediaUseCase struct {
	userRepo    user.Repository
	uploader    service.Uploader
	cache       *persistence.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpdateMediaUseCase(
	userRepo user.Repository,
	uploader service.Uploader,
	cache *persistence.ProfileCache,
	kafkaClient *event.KafkaProducerClient,
	log logger.Logger,
) *UpdateMediaUseCase {
	return &UpdateMediaUseCase{
		userRepo:    userRepo,
		uploader:    uploader,
		cache:       cache,
		kafkaClient: kafkaClient,
		logger:      log,
	}
}

type UpdateMediaInput struct {
	UserID   uuid.UUID
	Kind     AssetKind
	File     io.Reader
	Filename string
}

type UpdateMediaOutput struct {
	User *user.User
}

func (uc *UpdateMediaUseCase) Execute(ctx context.Context, input UpdateMediaInput) (*UpdateMediaOutput, error) {
	layout := input.Kind.layout()

	publicID := fmt.Sprintf("%s-%s-%d", input.Filename, layout.suffix, time.Now().UnixMilli())
	fileURL, err := uc.uploader.Upload(ctx, input.File, layout.folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("Upload failed", err)
	}

	u, err := uc.userRepo.UpdateFields(ctx, input.UserID, map[string]any{layout.column: fileURL})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, input.UserID)
	publishProfileEvent(uc.kafkaClient, uc.logger, event.ProfileEventPayload{
		EventType: event.ProfileEventTypeMediaUpdated,
		UserID:    input.UserID,
	})

	return &UpdateMediaOutput{User: u}, nil
}
