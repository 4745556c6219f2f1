package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/projection"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// postOwner возвращает автора поста. Ошибки: storage.ErrNotFound.
func postOwner(ctx context.Context, q querier, postID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	if err := q.QueryRow(ctx, `SELECT user_id FROM posts WHERE id = $1`, postID).Scan(&ownerID); err != nil {
		return uuid.Nil, mapError(err)
	}

	return ownerID, nil
}

// userExists проверяет наличие профиля. Ошибки: storage.ErrNotFound.
func userExists(ctx context.Context, q querier, userID uuid.UUID) error {
	var ok bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&ok); err != nil {
		return mapError(err)
	}

	if !ok {
		return storage.ErrNotFound
	}

	return nil
}

func notify(ctx context.Context, q querier, recipientID, issuerID uuid.UUID, postID *uuid.UUID, typ models.NotificationType) error {
	_, err := q.Exec(ctx, `
	INSERT INTO notifications (recipient_id, issuer_id, post_id, type)
	VALUES ($1, $2, $3, $4)
	`, recipientID, issuerID, postID, typ)

	return mapError(err)
}

// LikeInfo возвращает число лайков поста и флаг зрителя.
func (s *Storage) LikeInfo(ctx context.Context, viewerID, postID uuid.UUID) (*models.LikeInfo, error) {
	const op = "storage/postgres/relations/LikeInfo"

	var info models.LikeInfo
	err := s.db.QueryRow(ctx, `SELECT `+projection.LikeInfo.Columns("p.id", 1)+`
	FROM posts p WHERE p.id = $2`, viewerID, postID).Scan(&info.Likes, &info.IsLikedByViewer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return &info, nil
}

// Like ставит лайк и уведомляет автора поста в одной транзакции.
// Повторный лайк ничего не меняет и уведомление не дублирует.
func (s *Storage) Like(ctx context.Context, viewerID, postID uuid.UUID) error {
	const op = "storage/postgres/relations/Like"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		ownerID, err := postOwner(ctx, tx, postID)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
		INSERT INTO likes (user_id, post_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
		`, viewerID, postID)
		if err != nil {
			return mapError(err)
		}

		if tag.RowsAffected() == 0 || ownerID == viewerID {
			return nil
		}

		return notify(ctx, tx, ownerID, viewerID, &postID, models.NotificationLike)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Unlike снимает лайк и удаляет связанное уведомление в одной транзакции.
func (s *Storage) Unlike(ctx context.Context, viewerID, postID uuid.UUID) error {
	const op = "storage/postgres/relations/Unlike"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := postOwner(ctx, tx, postID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, viewerID, postID); err != nil {
			return mapError(err)
		}

		_, err := tx.Exec(ctx, `
		DELETE FROM notifications
		WHERE issuer_id = $1 AND post_id = $2 AND type = $3
		`, viewerID, postID, models.NotificationLike)

		return mapError(err)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BookmarkInfo сообщает, есть ли пост в закладках зрителя.
func (s *Storage) BookmarkInfo(ctx context.Context, viewerID, postID uuid.UUID) (*models.BookmarkInfo, error) {
	const op = "storage/postgres/relations/BookmarkInfo"

	var info models.BookmarkInfo
	err := s.db.QueryRow(ctx, `SELECT `+projection.BookmarkInfo.Columns("p.id", 1)+`
	FROM posts p WHERE p.id = $2`, viewerID, postID).Scan(&info.IsBookmarkedByViewer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return &info, nil
}

// Bookmark добавляет пост в закладки (идемпотентно).
func (s *Storage) Bookmark(ctx context.Context, viewerID, postID uuid.UUID) error {
	const op = "storage/postgres/relations/Bookmark"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := postOwner(ctx, tx, postID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
		INSERT INTO bookmarks (user_id, post_id) VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
		`, viewerID, postID)

		return mapError(err)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Unbookmark удаляет пост из закладок (идемпотентно).
func (s *Storage) Unbookmark(ctx context.Context, viewerID, postID uuid.UUID) error {
	const op = "storage/postgres/relations/Unbookmark"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := postOwner(ctx, tx, postID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND post_id = $2`, viewerID, postID)

		return mapError(err)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// FollowerInfo возвращает число подписчиков пользователя и флаг зрителя.
func (s *Storage) FollowerInfo(ctx context.Context, viewerID, userID uuid.UUID) (*models.FollowerInfo, error) {
	const op = "storage/postgres/relations/FollowerInfo"

	var info models.FollowerInfo
	err := s.db.QueryRow(ctx, `SELECT `+projection.FollowerInfo.Columns("u.id", 1)+`
	FROM users u WHERE u.id = $2`, viewerID, userID).Scan(&info.Followers, &info.IsFollowedByViewer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return &info, nil
}

// Follow подписывает зрителя на пользователя и уведомляет его в одной транзакции.
// Ошибки: storage.ErrInvalidArgument для подписки на себя, storage.ErrNotFound.
func (s *Storage) Follow(ctx context.Context, viewerID, userID uuid.UUID) error {
	const op = "storage/postgres/relations/Follow"

	if viewerID == userID {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if err := userExists(ctx, tx, userID); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
		INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
		`, viewerID, userID)
		if err != nil {
			return mapError(err)
		}

		if tag.RowsAffected() == 0 {
			return nil
		}

		return notify(ctx, tx, userID, viewerID, nil, models.NotificationFollow)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Unfollow отменяет подписку и удаляет уведомление FOLLOW в одной транзакции.
func (s *Storage) Unfollow(ctx context.Context, viewerID, userID uuid.UUID) error {
	const op = "storage/postgres/relations/Unfollow"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if err := userExists(ctx, tx, userID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
		DELETE FROM follows WHERE follower_id = $1 AND following_id = $2
		`, viewerID, userID); err != nil {
			return mapError(err)
		}

		_, err := tx.Exec(ctx, `
		DELETE FROM notifications
		WHERE issuer_id = $1 AND recipient_id = $2 AND type = $3
		`, viewerID, userID, models.NotificationFollow)

		return mapError(err)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
