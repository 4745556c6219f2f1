package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// ListComments возвращает комментарии поста, новые первыми.
func (s *Storage) ListComments(ctx context.Context, postID uuid.UUID, cursor string, limit int) ([]models.Comment, error) {
	const op = "storage/postgres/comments/ListComments"

	cur, ok := cursorID(cursor)
	if !ok || limit <= 0 {
		return []models.Comment{}, nil
	}

	b := &builder{}
	b.and("c0.post_id = " + b.arg(postID))
	b.after("c0", "comments", cur)

	q := `SELECT c0.id, c0.post_id, c0.user_id, c0.content, c0.created_at, ` + userColumns + `
	FROM comments c0
	JOIN users u ON u.id = c0.user_id
	` + b.clause() + `
	ORDER BY c0.created_at DESC, c0.id DESC
	LIMIT ` + b.arg(limit)

	rows, err := s.db.Query(ctx, q, b.args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	defer rows.Close()

	out := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		dest := append([]any{&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt}, scanUser(&c.Author)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		c.CreatedAt = c.CreatedAt.UTC()
		c.Author.CreatedAt = c.Author.CreatedAt.UTC()
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return out, nil
}

// CreateComment вставляет комментарий и уведомление COMMENT автору поста
// (кроме комментария к своему посту) в одной транзакции.
// Ошибки: storage.ErrNotFound, если поста нет.
func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	const op = "storage/postgres/comments/CreateComment"

	var created models.Comment
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		ownerID, err := postOwner(ctx, tx, comment.PostID)
		if err != nil {
			return err
		}

		row := tx.QueryRow(ctx, `
		WITH c0 AS (
			INSERT INTO comments (post_id, user_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, post_id, user_id, content, created_at
		)
		SELECT c0.id, c0.post_id, c0.user_id, c0.content, c0.created_at, `+userColumns+`
		FROM c0 JOIN users u ON u.id = c0.user_id
		`, comment.PostID, comment.UserID, comment.Content)

		dest := append([]any{&created.ID, &created.PostID, &created.UserID, &created.Content, &created.CreatedAt},
			scanUser(&created.Author)...)
		if err := row.Scan(dest...); err != nil {
			return mapError(err)
		}

		if ownerID == comment.UserID {
			return nil
		}

		return notify(ctx, tx, ownerID, comment.UserID, &comment.PostID, models.NotificationComment)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created.CreatedAt = created.CreatedAt.UTC()
	created.Author.CreatedAt = created.Author.CreatedAt.UTC()

	return &created, nil
}

// DeleteComment удаляет комментарий владельца вместе с его уведомлением COMMENT.
// Уведомление создаётся в транзакции комментария, поэтому совпадает с ним
// по (issuer_id, post_id, created_at); остальные комментарии того же автора
// к посту свои уведомления сохраняют.
// Ошибки: storage.ErrNotFound, storage.ErrForbidden.
func (s *Storage) DeleteComment(ctx context.Context, commentID, ownerID uuid.UUID) error {
	const op = "storage/postgres/comments/DeleteComment"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var (
			postID    uuid.UUID
			createdAt time.Time
		)
		err := tx.QueryRow(ctx, `SELECT post_id, created_at FROM comments WHERE id = $1`, commentID).
			Scan(&postID, &createdAt)
		if err != nil {
			return mapError(err)
		}

		if err := deleteOwned(ctx, tx, "comments", commentID, ownerID); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
		DELETE FROM notifications
		WHERE id IN (
			SELECT id FROM notifications
			WHERE issuer_id = $1 AND post_id = $2 AND type = $3 AND created_at = $4
			LIMIT 1
		)
		`, ownerID, postID, models.NotificationComment, createdAt)

		return mapError(err)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
