package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	"github.com/pribylovaa/go-social-network/internal/viewer"
	logctx "github.com/pribylovaa/go-social-network/pkg/log"
)

// Authenticator проверяет сессионный токен и возвращает зрителя.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (viewer.Viewer, error)
}

// Auth извлекает сессионный токен (cookie cookieName, иначе Authorization: Bearer),
// проверяет его и кладёт зрителя в контекст, дополняя логгер viewer_id.
//
// Поведение:
//   - нет токена, невалидный или отозванный — запрос идёт дальше без зрителя
//     (операции сервиса сами вернут 401);
//   - прочие ошибки проверки (кэш отзыва недоступен) — ответ сразу через WriteError.
func Auth(a Authenticator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			v, err := a.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, viewer.ErrUnauthorized) {
					next.ServeHTTP(w, r)
					return
				}

				apierrors.WriteError(w, r, err)
				return
			}

			ctx := viewer.Into(r.Context(), v)
			ctx = logctx.With(ctx, "viewer_id", v.ID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil {
			if v := strings.TrimSpace(c.Value); v != "" {
				return v
			}
		}
	}

	const prefix = "Bearer "
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}

	return ""
}
