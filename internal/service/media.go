package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

type UploadURLInput struct {
	ContentType   string `validate:"required"`
	ContentLength int64  `validate:"gt=0"`
}

// mediaType определяет тип вложения по типу содержимого.
func mediaType(contentType string) (models.MediaType, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaImage, true
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo, true
	}

	return "", false
}

// uploadURL выдаёт presigned PUT для объекта назначения kind.
func (s *Service) uploadURL(ctx context.Context, op string, kind storage.ObjectKind, input UploadURLInput) (*models.UploadInfo, error) {
	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	input.ContentType = strings.TrimSpace(strings.ToLower(input.ContentType))
	if err := check(lg, op, input); err != nil {
		return nil, err
	}

	if _, ok := mediaType(input.ContentType); !ok {
		lg.Warn("invalid argument: unsupported content type", "content_type", input.ContentType)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	info, err := s.objects.UploadURL(ctx, kind, v.ID, input.ContentType, input.ContentLength)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	lg.Debug("upload_url_issued", "key", info.Key)

	return info, nil
}

// MediaUploadURL выдаёт presigned PUT для вложения поста.
func (s *Service) MediaUploadURL(ctx context.Context, input UploadURLInput) (*models.UploadInfo, error) {
	const op = "service/media/MediaUploadURL"

	return s.uploadURL(ctx, op, storage.KindMedia, input)
}

// AvatarUploadURL выдаёт presigned PUT для аватара (только изображения).
func (s *Service) AvatarUploadURL(ctx context.Context, input UploadURLInput) (*models.UploadInfo, error) {
	const op = "service/media/AvatarUploadURL"

	return s.uploadURL(ctx, op, storage.KindAvatar, input)
}

// ConfirmMedia подтверждает загрузку вложения и сохраняет его без поста.
// Неприкреплённое вложение позже удаляет уборщик.
func (s *Service) ConfirmMedia(ctx context.Context, key string) (*models.Media, error) {
	const op = "service/media/ConfirmMedia"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	lg = lg.With("key", key)

	obj, err := s.objects.CheckUpload(ctx, storage.KindMedia, v.ID, strings.TrimSpace(key))
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	typ, ok := mediaType(obj.ContentType)
	if !ok {
		lg.Warn("invalid argument: unsupported content type", "content_type", obj.ContentType)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	media, err := s.storage.CreateMedia(ctx, &models.Media{
		UserID: v.ID,
		Key:    obj.Key,
		URL:    obj.URL,
		Type:   typ,
	})
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	lg.Info("media_confirmed", "media_id", media.ID.String())

	return media, nil
}

// ConfirmAvatar подтверждает загрузку аватара и обновляет avatar_url зрителя.
func (s *Service) ConfirmAvatar(ctx context.Context, key string) (*models.User, error) {
	const op = "service/media/ConfirmAvatar"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	lg = lg.With("key", key)

	obj, err := s.objects.CheckUpload(ctx, storage.KindAvatar, v.ID, strings.TrimSpace(key))
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	user, err := s.storage.UpdateUser(ctx, v.ID, storage.UserUpdate{AvatarURL: &obj.URL})
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	lg.Info("avatar_confirmed")

	return user, nil
}
