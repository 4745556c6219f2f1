// service содержит бизнес-логику social-service:
//   - ленты, поиск и закладки (курсорные страницы постов в проекции зрителя);
//   - посты, комментарии, связи (лайк, закладка, подписка) и уведомления;
//   - профили и загрузка вложений/аватаров через объектное хранилище;
//   - проверка сессий и выход;
//   - уборщик неприкреплённых вложений.
//
// Каждая операция начинается с viewer.Require: без зрителя — ErrUnauthorized
// до любого обращения к хранилищам.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pribylovaa/go-social-network/internal/auth"
	"github.com/pribylovaa/go-social-network/internal/cache"
	"github.com/pribylovaa/go-social-network/internal/config"
	"github.com/pribylovaa/go-social-network/internal/storage"
	"github.com/pribylovaa/go-social-network/internal/viewer"
	"github.com/pribylovaa/go-social-network/pkg/log"
)

var (
	// ErrUnauthorized — нет аутентифицированного зрителя.
	ErrUnauthorized = viewer.ErrUnauthorized
	// ErrInvalidArgument — некорректные входные данные.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности/дубликат.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden — операция над чужой сущностью.
	ErrForbidden = errors.New("forbidden")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// Размеры страниц и выборок.
const (
	FeedPageSize     = 10
	CommentsPageSize = 5
	SuggestionsLimit = 5
	TrendsLimit      = 5
	MaxAttachments   = 5
	janitorBatch     = 100
)

// TokenVerifier — проверка сессионного токена провайдера идентичности.
type TokenVerifier interface {
	Verify(token string) (*auth.Session, error)
}

// Service — описывает бизнес-логику social-service.
type Service struct {
	cfg      *config.Config
	storage  storage.Storage
	objects  storage.Objects
	sessions cache.SessionCache
	verifier TokenVerifier
	now      func() time.Time
}

// New создает новый экземпляр Service.
func New(st storage.Storage, objects storage.Objects, sessions cache.SessionCache, verifier TokenVerifier, cfg *config.Config) *Service {
	return &Service{
		cfg:      cfg,
		storage:  st,
		objects:  objects,
		sessions: sessions,
		verifier: verifier,
		now:      time.Now,
	}
}

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})

	return v
}

// check валидирует входную структуру по тегам validate.
func check(lg *slog.Logger, op string, input any) error {
	if err := validate.Struct(input); err != nil {
		lg.Warn("invalid_argument", "err", err.Error())

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return nil
}

// mapStorageError переводит ошибки хранилищ в ошибки сервиса.
// Отмена и дедлайн запроса сохраняются как есть, прочие неожиданные
// ошибки логируются и скрываются за ErrInternal.
func mapStorageError(lg *slog.Logger, op string, err error) error {
	if cerr := contextError(err); cerr != nil {
		lg.Warn("request_aborted", "err", cerr)

		return fmt.Errorf("%s: %w", op, cerr)
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("not_found")

		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrForbidden):
		lg.Warn("forbidden")

		return fmt.Errorf("%s: %w", op, ErrForbidden)
	case errors.Is(err, storage.ErrAlreadyExists):
		lg.Warn("already_exists")

		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	case errors.Is(err, storage.ErrInvalidArgument):
		lg.Warn("invalid_argument")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	default:
		lg.Error("storage_error", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}

// contextError возвращает context.Canceled или context.DeadlineExceeded,
// если err вызвана одной из них, иначе nil.
func contextError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return context.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return context.Canceled
	}

	return nil
}

// begin достаёт зрителя и логгер операции (viewer_id в него кладёт мидлвар Auth).
// Без зрителя возвращает ErrUnauthorized.
func begin(ctx context.Context, op string) (viewer.Viewer, *slog.Logger, error) {
	lg := log.From(ctx).With("op", op)

	v, err := viewer.Require(ctx)
	if err != nil {
		lg.Warn("unauthorized")

		return viewer.Viewer{}, lg, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	return v, lg, nil
}
