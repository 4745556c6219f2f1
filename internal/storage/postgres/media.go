package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// mediaColumns — колонки вложения, alias m.
const mediaColumns = `m.id, m.user_id, m.post_id, m.object_key, m.url, m.type, m.created_at`

func mediaDest(dst *models.Media) []any {
	return []any{&dst.ID, &dst.UserID, &dst.PostID, &dst.Key, &dst.URL, &dst.Type, &dst.CreatedAt}
}

func queryMedia(ctx context.Context, q querier, sql string, args ...any) ([]models.Media, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]models.Media, 0)
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(mediaDest(&m)...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return out, nil
}

// CreateMedia сохраняет подтверждённое вложение без поста.
// Ошибки: storage.ErrAlreadyExists для повторного ключа, storage.ErrNotFound без профиля.
func (s *Storage) CreateMedia(ctx context.Context, media *models.Media) (*models.Media, error) {
	const op = "storage/postgres/media/CreateMedia"

	var m models.Media
	err := s.db.QueryRow(ctx, `
	INSERT INTO media AS m (user_id, object_key, url, type)
	VALUES ($1, $2, $3, $4)
	RETURNING `+mediaColumns,
		media.UserID, media.Key, media.URL, media.Type,
	).Scan(mediaDest(&m)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	m.CreatedAt = m.CreatedAt.UTC()

	return &m, nil
}

// OrphanMedia возвращает самые старые неприкреплённые вложения.
func (s *Storage) OrphanMedia(ctx context.Context, olderThan time.Time, limit int) ([]models.Media, error) {
	const op = "storage/postgres/media/OrphanMedia"

	out, err := queryMedia(ctx, s.db, `SELECT `+mediaColumns+` FROM media m
	WHERE m.post_id IS NULL AND m.created_at < $1
	ORDER BY m.created_at, m.id
	LIMIT $2`, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// DeleteMedia удаляет записи, которые к моменту удаления всё ещё без поста.
func (s *Storage) DeleteMedia(ctx context.Context, ids []uuid.UUID) ([]models.Media, error) {
	const op = "storage/postgres/media/DeleteMedia"

	if len(ids) == 0 {
		return []models.Media{}, nil
	}

	out, err := queryMedia(ctx, s.db, `DELETE FROM media m
	WHERE m.id = ANY($1) AND m.post_id IS NULL
	RETURNING `+mediaColumns, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
