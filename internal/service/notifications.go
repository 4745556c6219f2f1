package service

import (
	"context"

	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/pager"
)

// Notifications возвращает уведомления зрителя, новые первыми.
func (s *Service) Notifications(ctx context.Context, cursor string) (*pager.Page[models.Notification], error) {
	const op = "service/notifications/Notifications"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, cursor string, limit int) ([]models.Notification, error) {
		return s.storage.ListNotifications(ctx, v.ID, cursor, limit)
	}

	page, err := pager.Fetch(ctx, pager.Request{Cursor: cursor, Size: FeedPageSize},
		func(n models.Notification) string { return n.ID.String() }, fetch)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	return page, nil
}

// UnreadNotificationsCount возвращает число непрочитанных уведомлений зрителя.
func (s *Service) UnreadNotificationsCount(ctx context.Context) (int64, error) {
	const op = "service/notifications/UnreadNotificationsCount"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return 0, err
	}

	n, err := s.storage.UnreadCount(ctx, v.ID)
	if err != nil {
		return 0, mapStorageError(lg, op, err)
	}

	return n, nil
}

// MarkNotificationsRead помечает все уведомления зрителя прочитанными.
func (s *Service) MarkNotificationsRead(ctx context.Context) error {
	const op = "service/notifications/MarkNotificationsRead"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return err
	}

	if err := s.storage.MarkRead(ctx, v.ID); err != nil {
		return mapStorageError(lg, op, err)
	}

	lg.Debug("notifications_marked_read")

	return nil
}
