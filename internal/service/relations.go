package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// relationOp — запись связи зрителя с сущностью.
type relationOp func(ctx context.Context, viewerID, entityID uuid.UUID) error

// writeRelation выполняет идемпотентную запись связи.
func (s *Service) writeRelation(ctx context.Context, op, event string, entityID uuid.UUID, write relationOp) error {
	v, lg, err := begin(ctx, op)
	if err != nil {
		return err
	}

	lg = lg.With("entity_id", entityID.String())

	if err := write(ctx, v.ID, entityID); err != nil {
		return mapStorageError(lg, op, err)
	}

	lg.Debug(event)

	return nil
}

// LikeInfo возвращает число лайков поста и флаг зрителя.
func (s *Service) LikeInfo(ctx context.Context, postID uuid.UUID) (*models.LikeInfo, error) {
	const op = "service/relations/LikeInfo"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	info, err := s.storage.LikeInfo(ctx, v.ID, postID)
	if err != nil {
		return nil, mapStorageError(lg.With("post_id", postID.String()), op, err)
	}

	return info, nil
}

// Like ставит лайк посту и возвращает обновлённый агрегат.
func (s *Service) Like(ctx context.Context, postID uuid.UUID) (*models.LikeInfo, error) {
	const op = "service/relations/Like"

	if err := s.writeRelation(ctx, op, "post_liked", postID, s.storage.Like); err != nil {
		return nil, err
	}

	return s.LikeInfo(ctx, postID)
}

// Unlike снимает лайк и возвращает обновлённый агрегат.
func (s *Service) Unlike(ctx context.Context, postID uuid.UUID) (*models.LikeInfo, error) {
	const op = "service/relations/Unlike"

	if err := s.writeRelation(ctx, op, "post_unliked", postID, s.storage.Unlike); err != nil {
		return nil, err
	}

	return s.LikeInfo(ctx, postID)
}

// BookmarkInfo сообщает, есть ли пост в закладках зрителя.
func (s *Service) BookmarkInfo(ctx context.Context, postID uuid.UUID) (*models.BookmarkInfo, error) {
	const op = "service/relations/BookmarkInfo"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	info, err := s.storage.BookmarkInfo(ctx, v.ID, postID)
	if err != nil {
		return nil, mapStorageError(lg.With("post_id", postID.String()), op, err)
	}

	return info, nil
}

// Bookmark добавляет пост в закладки зрителя.
func (s *Service) Bookmark(ctx context.Context, postID uuid.UUID) (*models.BookmarkInfo, error) {
	const op = "service/relations/Bookmark"

	if err := s.writeRelation(ctx, op, "post_bookmarked", postID, s.storage.Bookmark); err != nil {
		return nil, err
	}

	return &models.BookmarkInfo{IsBookmarkedByViewer: true}, nil
}

// Unbookmark удаляет пост из закладок зрителя.
func (s *Service) Unbookmark(ctx context.Context, postID uuid.UUID) (*models.BookmarkInfo, error) {
	const op = "service/relations/Unbookmark"

	if err := s.writeRelation(ctx, op, "post_unbookmarked", postID, s.storage.Unbookmark); err != nil {
		return nil, err
	}

	return &models.BookmarkInfo{IsBookmarkedByViewer: false}, nil
}

// FollowerInfo возвращает число подписчиков пользователя и флаг зрителя.
func (s *Service) FollowerInfo(ctx context.Context, userID uuid.UUID) (*models.FollowerInfo, error) {
	const op = "service/relations/FollowerInfo"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	info, err := s.storage.FollowerInfo(ctx, v.ID, userID)
	if err != nil {
		return nil, mapStorageError(lg.With("user_id", userID.String()), op, err)
	}

	return info, nil
}

// Follow подписывает зрителя на пользователя. Подписка на себя — ErrInvalidArgument.
func (s *Service) Follow(ctx context.Context, userID uuid.UUID) (*models.FollowerInfo, error) {
	const op = "service/relations/Follow"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	if v.ID == userID {
		lg.Warn("invalid argument: self follow")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.writeRelation(ctx, op, "user_followed", userID, s.storage.Follow); err != nil {
		return nil, err
	}

	return s.FollowerInfo(ctx, userID)
}

// Unfollow отменяет подписку зрителя.
func (s *Service) Unfollow(ctx context.Context, userID uuid.UUID) (*models.FollowerInfo, error) {
	const op = "service/relations/Unfollow"

	if err := s.writeRelation(ctx, op, "user_unfollowed", userID, s.storage.Unfollow); err != nil {
		return nil, err
	}

	return s.FollowerInfo(ctx, userID)
}
