// storage содержит контракты слоя хранилищ social-service.
//
// storage.go - реляционное хранилище (посты, комментарии, связи, уведомления,
// пользователи, вложения) и общие ошибки.
// objects.go - контракт объектного хранилища (presigned загрузки в S3/MinIO).
//
// Курсорные выборки принимают cursor и limit в смысле pager.FetchFunc:
// не более limit записей, начиная с cursor включительно. Некорректный или
// устаревший cursor даёт пустую выборку, а не ошибку.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушена уникальность (например, username).
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden — запись принадлежит другому пользователю.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument — нарушены ограничения запроса.
	ErrInvalidArgument = errors.New("invalid argument")
)

// PostFilter — условия выборки постов. Пустой фильтр — все посты.
type PostFilter struct {
	// AuthorID — только посты автора.
	AuthorID *uuid.UUID
	// FollowedBy — только посты авторов, на которых подписан пользователь.
	FollowedBy *uuid.UUID
	// Query — выражение to_tsquery; совпадение по тексту поста, username и display_name автора.
	Query string
}

// Posts — контракт постов и их проекций.
type Posts interface {
	// ListPosts возвращает посты в порядке (created_at DESC, id DESC), спроецированные на viewerID.
	ListPosts(ctx context.Context, viewerID uuid.UUID, filter PostFilter, cursor string, limit int) ([]models.PostView, error)
	// PostByID возвращает пост в проекции зрителя.
	PostByID(ctx context.Context, viewerID, postID uuid.UUID) (*models.PostView, error)
	// CreatePost вставляет пост и прикрепляет к нему вложения автора в одной транзакции.
	// Вложение чужое, уже прикреплённое или отсутствующее — ErrInvalidArgument.
	CreatePost(ctx context.Context, post *models.Post, mediaIDs []uuid.UUID) (*models.Post, error)
	// DeletePost удаляет пост владельца: ErrNotFound, ErrForbidden.
	DeletePost(ctx context.Context, postID, ownerID uuid.UUID) error
	// ListBookmarks возвращает закладки пользователя по времени добавления; курсор — ID закладки.
	ListBookmarks(ctx context.Context, viewerID uuid.UUID, cursor string, limit int) ([]models.Bookmark, error)
	// TrendingTopics возвращает самые частые хэштеги.
	TrendingTopics(ctx context.Context, limit int) ([]models.Topic, error)
}

// Comments — контракт комментариев.
type Comments interface {
	// ListComments возвращает комментарии поста в порядке (created_at DESC, id DESC).
	ListComments(ctx context.Context, postID uuid.UUID, cursor string, limit int) ([]models.Comment, error)
	// CreateComment вставляет комментарий и уведомление автору поста в одной транзакции.
	CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	// DeleteComment удаляет комментарий владельца: ErrNotFound, ErrForbidden.
	DeleteComment(ctx context.Context, commentID, ownerID uuid.UUID) error
}

// Relations — контракт связей (лайки, закладки, подписки).
// Запись идемпотентна: повторный Like/Follow и Unlike/Unfollow без связи не ошибки.
type Relations interface {
	LikeInfo(ctx context.Context, viewerID, postID uuid.UUID) (*models.LikeInfo, error)
	Like(ctx context.Context, viewerID, postID uuid.UUID) error
	Unlike(ctx context.Context, viewerID, postID uuid.UUID) error

	BookmarkInfo(ctx context.Context, viewerID, postID uuid.UUID) (*models.BookmarkInfo, error)
	Bookmark(ctx context.Context, viewerID, postID uuid.UUID) error
	Unbookmark(ctx context.Context, viewerID, postID uuid.UUID) error

	FollowerInfo(ctx context.Context, viewerID, userID uuid.UUID) (*models.FollowerInfo, error)
	Follow(ctx context.Context, viewerID, userID uuid.UUID) error
	Unfollow(ctx context.Context, viewerID, userID uuid.UUID) error
}

// Notifications — контракт уведомлений получателя.
type Notifications interface {
	ListNotifications(ctx context.Context, recipientID uuid.UUID, cursor string, limit int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, recipientID uuid.UUID) error
}

// UserUpdate — частичный апдейт профиля: обновляются только непустые указатели.
type UserUpdate struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

// Users — контракт профилей.
type Users interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UserByUsername(ctx context.Context, viewerID uuid.UUID, username string) (*models.UserView, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, update UserUpdate) (*models.User, error)
	// SuggestedUsers возвращает пользователей, на которых зритель не подписан (кроме него самого).
	SuggestedUsers(ctx context.Context, viewerID uuid.UUID, limit int) ([]models.UserView, error)
}

// Media — контракт записей о вложениях.
type Media interface {
	CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error)
	// OrphanMedia возвращает вложения без поста, созданные раньше olderThan.
	OrphanMedia(ctx context.Context, olderThan time.Time, limit int) ([]models.Media, error)
	// DeleteMedia удаляет записи, если они всё ещё не прикреплены к посту.
	// Возвращает удалённые записи.
	DeleteMedia(ctx context.Context, ids []uuid.UUID) ([]models.Media, error)
}

// Storage — верхнеуровневый интерфейс реляционного хранилища.
type Storage interface {
	Posts
	Comments
	Relations
	Notifications
	Users
	Media
	Close()
}
