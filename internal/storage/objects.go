package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// ObjectKind — назначение объекта; определяет префикс ключа и допустимые типы.
type ObjectKind string

const (
	KindMedia  ObjectKind = "media"
	KindAvatar ObjectKind = "avatars"
)

// Object — подтверждённый объект в бакете.
type Object struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

// Objects — контракт генерации presigned URL и подтверждения факта загрузки.
type Objects interface {
	// UploadURL генерирует presigned PUT. Внутри — валидация contentType и contentLength.
	UploadURL(ctx context.Context, kind ObjectKind, userID uuid.UUID, contentType string, contentLength int64) (*models.UploadInfo, error)
	// CheckUpload проверяет факт загрузки по key (владелец, наличие, тип, размер).
	// Ошибки: ErrInvalidArgument, ErrNotFound.
	CheckUpload(ctx context.Context, kind ObjectKind, userID uuid.UUID, key string) (*Object, error)
	// RemoveObject удаляет объект; отсутствие объекта не ошибка.
	RemoveObject(ctx context.Context, key string) error
}
