package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	logctx "github.com/pribylovaa/go-social-network/pkg/log"
)

// Timeout ограничивает время обработки запроса.
//
// Уже выставленный deadline не продлевается; d <= 0 оставляет только его.
// Если deadline истёк, а хендлер так ничего и не записал, клиент получает
// 504/deadline_exceeded в общем конверте ошибок.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, ok := ctx.Deadline(); !ok && d > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
				r = r.WithContext(ctx)
			}

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			if sw.wrote() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			logctx.From(ctx).Warn("request_timeout",
				"method", r.Method,
				"route", routePattern(r),
			)
			apierrors.WriteError(sw, r, ctx.Err())
		})
	}
}
