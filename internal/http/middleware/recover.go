package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	logctx "github.com/pribylovaa/go-social-network/pkg/log"
)

// Recover превращает panic хендлера в 500/internal.
//
// Причина и стек уходят только в лог. Если ответ уже начат, конверт
// ошибки не пишется: статус клиенту отправлен. http.ErrAbortHandler
// пробрасывается дальше, чтобы сервер оборвал соединение.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic_recovered",
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.Any("reason", rec),
					slog.String("stack", string(debug.Stack())),
					slog.Bool("response_started", sw.wrote()),
				)

				if !sw.wrote() {
					apierrors.WriteError(sw, r, fmt.Errorf("panic: %v", rec))
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
