package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/media"
)

// ObjectStore is satisfied by storage.S3Store.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type AvatarUploader struct {
	store ObjectStore
	now   func() time.Time
}

func NewAvatarUploader(store ObjectStore) *AvatarUploader {
	return &AvatarUploader{store: store, now: time.Now}
}

// Upload converts image to a WebP thumbnail and stores it under a fresh
// key per upload. It returns the public URL.
func (u *AvatarUploader) Upload(ctx context.Context, doctorID uuid.UUID, image io.Reader) (string, error) {
	thumb, err := media.Thumbnail(image)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		return "", httperr.ErrValidation("avatar_too_large", "file")
	case errors.Is(err, media.ErrUnsupported):
		return "", httperr.ErrValidation("avatar_unsupported_format", "file")
	case err != nil:
		return "", httperr.ErrStore("avatar_encode_failure", err)
	}

	key := fmt.Sprintf("avatars/%s/%d.webp", doctorID, u.now().UnixNano())
	url, err := u.store.Put(ctx, key, thumb, media.ContentType)
	if err != nil {
		return "", httperr.ErrStore("avatar_upload_failure", err)
	}
	return url, nil
}
