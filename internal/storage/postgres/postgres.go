// postgres предоставляет реализацию storage.Storage на базе PostgreSQL.
//
// Все курсорные выборки строятся одинаково: одна ограниченная выборка в порядке
// (created_at DESC, id DESC), курсор — id записи, страница начинается с неё
// включительно. Производные колонки зрителя добавляются в тот же SELECT через
// пакет projection.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создает и инициализирует пул соединений к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)

// querier — общее подмножество *pgxpool.Pool и pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapError переводит ошибки драйвера в ошибки слоя хранилища.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return storage.ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return storage.ErrNotFound
		case pgerrcode.CheckViolation, pgerrcode.InvalidTextRepresentation:
			return storage.ErrInvalidArgument
		}
	}

	return err
}

// cursorID разбирает курсор. Пустой курсор — uuid.Nil и ok;
// ok == false — курсор битый, выборка должна быть пустой.
func cursorID(cursor string) (uuid.UUID, bool) {
	if cursor == "" {
		return uuid.Nil, true
	}

	id, err := uuid.Parse(cursor)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// builder собирает WHERE и позиционные параметры запроса.
type builder struct {
	where []string
	args  []any
}

// arg добавляет параметр и возвращает его плейсхолдер.
func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *builder) and(cond string) {
	b.where = append(b.where, cond)
}

// after добавляет keyset-условие «не дальше курсора» для (created_at DESC, id DESC).
// Если запись курсора удалена, подзапрос пуст и сравнение с NULL не пропускает ни одной строки.
func (b *builder) after(alias, table string, cursor uuid.UUID) {
	if cursor == uuid.Nil {
		return
	}

	b.and(fmt.Sprintf("(%[1]s.created_at, %[1]s.id) <= (SELECT c.created_at, c.id FROM %[2]s c WHERE c.id = %[3]s)",
		alias, table, b.arg(cursor)))
}

func (b *builder) clause() string {
	if len(b.where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(b.where, "\n\tAND ")
}

// deleteOwned удаляет запись владельца одним запросом и различает
// «нет записи» (ErrNotFound) и «чужая запись» (ErrForbidden).
func deleteOwned(ctx context.Context, q querier, table string, id, ownerID uuid.UUID) error {
	sql := fmt.Sprintf(`
	WITH target AS (SELECT id, user_id FROM %[1]s WHERE id = $1),
	deleted AS (
		DELETE FROM %[1]s d USING target t
		WHERE d.id = t.id AND t.user_id = $2
		RETURNING d.id
	)
	SELECT EXISTS (SELECT 1 FROM target), EXISTS (SELECT 1 FROM deleted)
	`, table)

	var found, deleted bool
	if err := q.QueryRow(ctx, sql, id, ownerID).Scan(&found, &deleted); err != nil {
		return mapError(err)
	}

	switch {
	case !found:
		return storage.ErrNotFound
	case !deleted:
		return storage.ErrForbidden
	}

	return nil
}
