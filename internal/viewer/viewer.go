// viewer хранит в контексте идентичность аутентифицированного актора (ViewerContext).
//
// Все операции чтения и записи, зависящие от зрителя, начинаются с Require:
// без зрителя операция завершается ErrUnauthorized до любого обращения к хранилищу.
package viewer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized — в контексте нет аутентифицированного зрителя.
var ErrUnauthorized = errors.New("unauthorized")

// Viewer — аутентифицированный актор текущего запроса.
type Viewer struct {
	ID uuid.UUID
	// SessionID — идентификатор сессии у провайдера идентичности (для logout).
	SessionID string
	// ExpiresAt — момент истечения сессии.
	ExpiresAt time.Time
}

type ctxKey struct{}

// Into кладёт зрителя в контекст. Нулевой ID не сохраняется.
func Into(ctx context.Context, v Viewer) context.Context {
	if v.ID == uuid.Nil {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, v)
}

// From возвращает зрителя и признак его наличия.
func From(ctx context.Context) (Viewer, bool) {
	v, ok := ctx.Value(ctxKey{}).(Viewer)
	if !ok || v.ID == uuid.Nil {
		return Viewer{}, false
	}

	return v, true
}

// Require возвращает зрителя или ErrUnauthorized.
func Require(ctx context.Context) (Viewer, error) {
	v, ok := From(ctx)
	if !ok {
		return Viewer{}, ErrUnauthorized
	}

	return v, nil
}
