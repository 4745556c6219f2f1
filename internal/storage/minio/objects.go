package minio

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// extensions — расширение ключа по типу содержимого.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

// UploadURL генерирует presigned PUT URL.
// Ключ имеет вид "<kind>/<userID>/<uuid><ext>"; аватар допускает только изображения.
func (o *Objects) UploadURL(ctx context.Context, kind storage.ObjectKind, userID uuid.UUID, contentType string, contentLength int64) (*models.UploadInfo, error) {
	const op = "storage/minio/objects/UploadURL"

	if contentLength <= 0 || contentLength > o.media.MaxSizeBytes {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if !o.allowed(kind, contentType) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	key := path.Join(string(kind), userID.String(), uuid.NewString()+extensions[contentType])

	u, err := o.client.PresignedPutObject(ctx, o.s3.Bucket, key, o.s3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   o.s3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(contentLength, 10),
		},
	}, nil
}

// CheckUpload подтверждает факт загрузки по key:
// ключ принадлежит пользователю, объект существует и удовлетворяет ограничениям.
func (o *Objects) CheckUpload(ctx context.Context, kind storage.ObjectKind, userID uuid.UUID, key string) (*storage.Object, error) {
	const op = "storage/minio/objects/CheckUpload"

	prefix := string(kind) + "/" + userID.String() + "/"
	if !strings.HasPrefix(key, prefix) || strings.Contains(key, "..") {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	info, err := o.client.StatObject(ctx, o.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		resp := mclient.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == 404 {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > o.media.MaxSizeBytes {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if !o.allowed(kind, info.ContentType) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	return &storage.Object{
		Key:         key,
		URL:         o.baseURL + "/" + key,
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

// RemoveObject удаляет объект. Отсутствующий объект не считается ошибкой.
func (o *Objects) RemoveObject(ctx context.Context, key string) error {
	const op = "storage/minio/objects/RemoveObject"

	if err := o.client.RemoveObject(ctx, o.s3.Bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		if mclient.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// allowed проверяет, что тип содержимого входит в allow-list и подходит назначению.
func (o *Objects) allowed(kind storage.ObjectKind, contentType string) bool {
	if !slices.Contains(o.media.AllowedContentTypes, contentType) {
		return false
	}

	if kind == storage.KindAvatar {
		return strings.HasPrefix(contentType, "image/")
	}

	return true
}
