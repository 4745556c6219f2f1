package pager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты пакета pager.
//
//  Проверяем:
//  - обход коллекции из N элементов страницами по P: ⌈N/P⌉ страниц, конкатенация = коллекция,
//    без дублей и пропусков;
//  - NextCursor == nil тогда и только тогда, когда страница последняя;
//  - пример из 11 постов (p11 — самый новый) и размер 10;
//  - устаревший/чужой курсор -> пустая страница без ошибки;
//  - ошибка выборки пробрасывается, размер <= 0 отклоняется без выборки.

type item struct {
	ID string
}

// memCollection — упорядоченная коллекция в памяти с семантикой курсора «с X включительно».
type memCollection struct {
	items []item
	calls int
	limit int
}

func (m *memCollection) fetch(_ context.Context, cursor string, limit int) ([]item, error) {
	m.calls++
	m.limit = limit

	start := 0
	if cursor != "" {
		start = -1
		for i, it := range m.items {
			if it.ID == cursor {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, nil
		}
	}

	end := start + limit
	if end > len(m.items) {
		end = len(m.items)
	}

	return append([]item(nil), m.items[start:end]...), nil
}

func itemKey(it item) string { return it.ID }

// newestFirst — посты p1..pn, созданные по порядку; выдача по убыванию времени создания.
func newestFirst(n int) []item {
	out := make([]item, 0, n)
	for i := n; i >= 1; i-- {
		out = append(out, item{ID: fmt.Sprintf("p%d", i)})
	}
	return out
}

func TestFetch_ElevenPosts_PageSizeTen(t *testing.T) {
	col := &memCollection{items: newestFirst(11)}

	p1, err := Fetch(context.Background(), Request{Size: 10}, itemKey, col.fetch)
	require.NoError(t, err)
	require.Equal(t, 11, col.limit, "выборка должна запрашивать pageSize+1")
	require.Len(t, p1.Items, 10)
	require.Equal(t, "p11", p1.Items[0].ID)
	require.Equal(t, "p2", p1.Items[9].ID)
	require.NotNil(t, p1.NextCursor)
	require.Equal(t, "p1", *p1.NextCursor)
	require.True(t, p1.HasMore())

	p2, err := Fetch(context.Background(), Request{Size: 10, Cursor: *p1.NextCursor}, itemKey, col.fetch)
	require.NoError(t, err)
	require.Equal(t, []item{{ID: "p1"}}, p2.Items)
	require.Nil(t, p2.NextCursor)
	require.False(t, p2.HasMore())
}

func TestFetch_TraversesWholeCollection(t *testing.T) {
	for n := 0; n <= 25; n++ {
		for size := 1; size <= 7; size++ {
			t.Run(fmt.Sprintf("n=%d/size=%d", n, size), func(t *testing.T) {
				col := &memCollection{items: newestFirst(n)}

				var (
					got    []item
					pages  int
					cursor string
				)
				for {
					page, err := Fetch(context.Background(), Request{Size: size, Cursor: cursor}, itemKey, col.fetch)
					require.NoError(t, err)
					require.LessOrEqual(t, len(page.Items), size)

					pages++
					got = append(got, page.Items...)

					if page.NextCursor == nil {
						break
					}
					// Непоследняя страница всегда полная.
					require.Len(t, page.Items, size)
					cursor = *page.NextCursor
				}

				want := (n + size - 1) / size
				if want == 0 {
					want = 1 // пустая коллекция — одна пустая страница
				}
				require.Equal(t, want, pages)
				require.Equal(t, col.calls, pages, "одна выборка на страницу")

				if n == 0 {
					require.Empty(t, got)
					return
				}
				require.Equal(t, col.items, got)

				seen := make(map[string]struct{}, len(got))
				for _, it := range got {
					_, dup := seen[it.ID]
					require.False(t, dup, "дубликат %s", it.ID)
					seen[it.ID] = struct{}{}
				}
			})
		}
	}
}

func TestFetch_ExactMultiple_LastPageHasNoCursor(t *testing.T) {
	col := &memCollection{items: newestFirst(10)}

	p, err := Fetch(context.Background(), Request{Size: 5}, itemKey, col.fetch)
	require.NoError(t, err)
	require.NotNil(t, p.NextCursor)

	p, err = Fetch(context.Background(), Request{Size: 5, Cursor: *p.NextCursor}, itemKey, col.fetch)
	require.NoError(t, err)
	require.Len(t, p.Items, 5)
	require.Nil(t, p.NextCursor)
}

func TestFetch_StaleCursor_EmptyPageNoError(t *testing.T) {
	col := &memCollection{items: newestFirst(3)}

	p, err := Fetch(context.Background(), Request{Size: 10, Cursor: "deleted"}, itemKey, col.fetch)
	require.NoError(t, err)
	require.NotNil(t, p.Items, "пустая страница сериализуется как [], а не null")
	require.Empty(t, p.Items)
	require.Nil(t, p.NextCursor)
}

func TestFetch_TrimsCursorWhitespace(t *testing.T) {
	col := &memCollection{items: newestFirst(3)}

	p, err := Fetch(context.Background(), Request{Size: 10, Cursor: "  p2 "}, itemKey, col.fetch)
	require.NoError(t, err)
	require.Equal(t, []item{{ID: "p2"}, {ID: "p1"}}, p.Items)
}

func TestFetch_InvalidSize_NoFetch(t *testing.T) {
	col := &memCollection{items: newestFirst(3)}

	for _, size := range []int{0, -1} {
		_, err := Fetch(context.Background(), Request{Size: size}, itemKey, col.fetch)
		require.ErrorIs(t, err, ErrInvalidSize)
	}
	require.Zero(t, col.calls)
}

func TestFetch_PropagatesFetchError(t *testing.T) {
	boom := errors.New("db down")

	_, err := Fetch(context.Background(), Request{Size: 10}, itemKey,
		func(context.Context, string, int) ([]item, error) { return nil, boom })
	require.ErrorIs(t, err, boom)
}

func TestMap_KeepsCursor(t *testing.T) {
	next := "c"
	src := &Page[item]{Items: []item{{ID: "a"}, {ID: "b"}}, NextCursor: &next}

	out := Map(src, func(it item) string { return it.ID })
	require.Equal(t, []string{"a", "b"}, out.Items)
	require.Same(t, src.NextCursor, out.NextCursor)
}
