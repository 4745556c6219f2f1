package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-social-network/internal/viewer"
	"github.com/pribylovaa/go-social-network/pkg/log"
)

// Authenticate проверяет сессионный токен и возвращает зрителя.
//
// Поведение:
//   - пустой, невалидный, истёкший или отозванный токен — ErrUnauthorized;
//   - отмена или дедлайн запроса — context.Canceled / context.DeadlineExceeded;
//   - прочая ошибка кэша отзыва — ErrInternal.
func (s *Service) Authenticate(ctx context.Context, token string) (viewer.Viewer, error) {
	const op = "service/sessions/Authenticate"

	lg := log.From(ctx).With("op", op)

	if token == "" {
		return viewer.Viewer{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	session, err := s.verifier.Verify(token)
	if err != nil {
		lg.Debug("token_rejected", "err", err.Error())

		return viewer.Viewer{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	revoked, err := s.sessions.IsRevoked(ctx, session.SessionID)
	if err != nil {
		if cerr := contextError(err); cerr != nil {
			lg.Warn("request_aborted", "err", cerr)

			return viewer.Viewer{}, fmt.Errorf("%s: %w", op, cerr)
		}

		lg.Error("session_cache_error", "err", err)

		return viewer.Viewer{}, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if revoked {
		lg.Info("session_revoked", "user_id", session.UserID.String())

		return viewer.Viewer{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	return viewer.Viewer{
		ID:        session.UserID,
		SessionID: session.SessionID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout отзывает текущую сессию зрителя до её истечения.
func (s *Service) Logout(ctx context.Context) error {
	const op = "service/sessions/Logout"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return err
	}

	if err := s.sessions.Revoke(ctx, v.SessionID, v.ID, v.ExpiresAt); err != nil {
		if cerr := contextError(err); cerr != nil {
			lg.Warn("request_aborted", "err", cerr)

			return fmt.Errorf("%s: %w", op, cerr)
		}

		lg.Error("session_revoke_failed", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("logout_ok")

	return nil
}
