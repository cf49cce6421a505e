package service

import (
	"context"
	"io"
)

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	// DeleteByURL destroys the asset a previous Upload returned.
	DeleteByURL(ctx context.Context, url string) error
}
