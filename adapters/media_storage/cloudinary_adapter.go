package media_storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/devhubio/profile-service/internal/application/service"
	"github.com/devhubio/profile-service/internal/config"
	"github.com/devhubio/profile-service/pkg/logger"
)

type cloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.Uploader, error) {

	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("Connect Cloudinary successfully.")
	return &cloudinaryAdapter{cld: cld, logger: log}, nil
}

func (a *cloudinaryAdapter) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error) {
	uploadParams := uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	}
	result, err := a.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	return result.SecureURL, nil
}

func (a *cloudinaryAdapter) DeleteByURL(ctx context.Context, assetURL string) error {
	publicID, err := PublicIDFromURL(assetURL)
	if err != nil {
		return fmt.Errorf("cannot resolve public id: %w", err)
	}

	_, err = a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	return nil
}

// PublicIDFromURL recovers the "folder/name" public id from a Cloudinary
// delivery URL. Only the URL is persisted, so delete has to work
// backwards from it. Delivery URLs look like
// .../<cloud>/<asset_type>/upload/v<version>/<folder>/<name>.<ext>.
func PublicIDFromURL(assetURL string) (string, error) {
	u, err := url.Parse(assetURL)
	if err != nil {
		return "", fmt.Errorf("invalid asset url %q: %w", assetURL, err)
	}

	parts := strings.Split(strings.TrimPrefix(u.Path, "/"), "/")
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx == len(parts)-1 {
		return "", fmt.Errorf("unrecognized cloudinary url %q", assetURL)
	}

	rest := parts[uploadIdx+1:]
	if len(rest) > 1 && isVersionSegment(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", fmt.Errorf("unrecognized cloudinary url %q", assetURL)
	}

	publicID := strings.Join(rest, "/")
	ext := path.Ext(publicID)
	return strings.TrimSuffix(publicID, ext), nil
}

// isVersionSegment reports whether s looks like the "v<digits>" path
// element Cloudinary inserts before the public id.
func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
