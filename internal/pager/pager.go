// pager реализует курсорную пагинацию по стабильному упорядочиванию.
//
// Схема «pageSize+1»: выборка запрашивает на одну запись больше размера страницы.
// Если лишняя запись пришла, её идентификатор становится NextCursor и в страницу
// не попадает; иначе NextCursor == nil (коллекция закончилась). Проверка «есть ли
// ещё» стоит одну запись вместо отдельного count-запроса.
//
// Курсор указывает на следующую непрочитанную запись: запрос с Cursor == X
// начинает страницу с X включительно при том же упорядочивании. Битый или
// устаревший курсор (запись удалена) даёт меньшую или пустую страницу без ошибки.
package pager

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize — размер страницы должен быть положительным.
var ErrInvalidSize = errors.New("invalid page size")

// Request — параметры одной страницы.
type Request struct {
	// Cursor — пусто для первой страницы.
	Cursor string
	// Size — фиксирован на стороне вызывающего (10 для лент, 5 для комментариев).
	Size int
}

// Page — страница и курсор продолжения.
type Page[T any] struct {
	Items      []T
	NextCursor *string
}

// HasMore сообщает, есть ли следующая страница.
func (p *Page[T]) HasMore() bool {
	return p.NextCursor != nil
}

// FetchFunc — одна ограниченная выборка: не более limit записей в порядке ключа,
// начиная с cursor включительно (пустой cursor — с начала коллекции).
type FetchFunc[T any] func(ctx context.Context, cursor string, limit int) ([]T, error)

// Fetch выполняет ровно одну выборку размером req.Size+1 и режет её до страницы.
// key возвращает идентификатор записи, пригодный как курсор для той же выборки.
func Fetch[T any](ctx context.Context, req Request, key func(T) string, fetch FetchFunc[T]) (*Page[T], error) {
	const op = "pager.Fetch"

	if req.Size <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSize)
	}

	items, err := fetch(ctx, strings.TrimSpace(req.Cursor), req.Size+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page := &Page[T]{Items: items}
	if len(items) > req.Size {
		next := key(items[req.Size])
		page.NextCursor = &next
		page.Items = items[:req.Size:req.Size]
	}

	if page.Items == nil {
		page.Items = make([]T, 0)
	}

	return page, nil
}

// Map переносит страницу на другой тип элементов, сохраняя курсор.
func Map[T, U any](p *Page[T], f func(T) U) *Page[U] {
	out := &Page[U]{
		Items:      make([]U, 0, len(p.Items)),
		NextCursor: p.NextCursor,
	}

	for _, it := range p.Items {
		out.Items = append(out.Items, f(it))
	}

	return out
}
