package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// excerptLen — длина фрагмента поста в уведомлении.
const excerptLen = 140

// ListNotifications возвращает уведомления получателя с инициатором и фрагментом поста.
func (s *Storage) ListNotifications(ctx context.Context, recipientID uuid.UUID, cursor string, limit int) ([]models.Notification, error) {
	const op = "storage/postgres/notifications/ListNotifications"

	cur, ok := cursorID(cursor)
	if !ok || limit <= 0 {
		return []models.Notification{}, nil
	}

	b := &builder{}
	b.and("n.recipient_id = " + b.arg(recipientID))
	b.after("n", "notifications", cur)

	q := `SELECT n.id, n.recipient_id, n.issuer_id, n.post_id, n.type, n.read, n.created_at,
	COALESCE(left(p.content, ` + b.arg(excerptLen) + `), ''), ` + userColumns + `
	FROM notifications n
	JOIN users u ON u.id = n.issuer_id
	LEFT JOIN posts p ON p.id = n.post_id
	` + b.clause() + `
	ORDER BY n.created_at DESC, n.id DESC
	LIMIT ` + b.arg(limit)

	rows, err := s.db.Query(ctx, q, b.args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	defer rows.Close()

	out := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		dest := append([]any{
			&n.ID, &n.RecipientID, &n.IssuerID, &n.PostID, &n.Type, &n.Read, &n.CreatedAt, &n.PostExcerpt,
		}, scanUser(&n.Issuer)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		n.CreatedAt = n.CreatedAt.UTC()
		n.Issuer.CreatedAt = n.Issuer.CreatedAt.UTC()
		out = append(out, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return out, nil
}

// UnreadCount возвращает число непрочитанных уведомлений.
func (s *Storage) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	const op = "storage/postgres/notifications/UnreadCount"

	var n int64
	if err := s.db.QueryRow(ctx, `
	SELECT count(*) FROM notifications WHERE recipient_id = $1 AND NOT read
	`, recipientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// MarkRead помечает все уведомления получателя прочитанными.
func (s *Storage) MarkRead(ctx context.Context, recipientID uuid.UUID) error {
	const op = "storage/postgres/notifications/MarkRead"

	if _, err := s.db.Exec(ctx, `
	UPDATE notifications SET read = true WHERE recipient_id = $1 AND NOT read
	`, recipientID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
