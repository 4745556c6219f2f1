package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/pkg/log"
)

// StartJanitor периодически удаляет вложения, не прикреплённые к посту
// дольше cfg.Media.OrphanTTL: сначала запись, затем объект в бакете.
//
// Особенности:
//   - первый проход выполняется сразу при запуске;
//   - observe (если задан) получает число удалённых за проход;
//   - останавливается по ctx.
func (s *Service) StartJanitor(ctx context.Context, observe func(removed int)) error {
	const op = "service/janitor/StartJanitor"

	interval := s.cfg.Media.JanitorInterval
	if interval <= 0 {
		return fmt.Errorf("%s: janitor interval must be > 0", op)
	}

	lg := log.From(ctx)
	lg.Info("janitor_start",
		slog.String("op", op),
		slog.Duration("interval", interval),
		slog.Duration("orphan_ttl", s.cfg.Media.OrphanTTL),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		removed, err := s.sweepOnce(ctx)
		if err != nil {
			lg.Warn("janitor_tick_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}

		if observe != nil {
			observe(removed)
		}

		select {
		case <-ctx.Done():
			lg.Info("janitor_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
		}
	}
}

// sweepOnce — один проход: пачками, пока находятся сироты.
// Возвращает число удалённых вложений.
func (s *Service) sweepOnce(ctx context.Context) (int, error) {
	const op = "service/janitor/sweepOnce"

	lg := log.From(ctx)
	cutoff := s.now().Add(-s.cfg.Media.OrphanTTL)

	var removed int
	for ctx.Err() == nil {
		orphans, err := s.storage.OrphanMedia(ctx, cutoff, janitorBatch)
		if err != nil {
			return removed, fmt.Errorf("%s: orphan_media: %w", op, err)
		}

		if len(orphans) == 0 {
			break
		}

		ids := make([]uuid.UUID, 0, len(orphans))
		for _, m := range orphans {
			ids = append(ids, m.ID)
		}

		// Запись удаляется только если её так и не прикрепили.
		deleted, err := s.storage.DeleteMedia(ctx, ids)
		if err != nil {
			return removed, fmt.Errorf("%s: delete_media: %w", op, err)
		}

		for _, m := range deleted {
			if err := s.objects.RemoveObject(ctx, m.Key); err != nil {
				lg.Warn("janitor_remove_object_failed",
					slog.String("op", op),
					slog.String("key", m.Key),
					slog.String("err", err.Error()),
				)
			}
		}

		removed += len(deleted)

		if len(orphans) < janitorBatch || len(deleted) == 0 {
			break
		}
	}

	if removed > 0 {
		lg.Info("janitor_swept", slog.String("op", op), slog.Int("removed", removed))
	}

	return removed, nil
}
