// projection описывает проекцию сущности относительно зрителя (viewer-scoped projection).
//
// К базовой строке сущности добавляются колонки того же SELECT:
//   - флаги «зритель связан с сущностью» — EXISTS по связи, ограниченный actor = зритель,
//     то есть не больше одной строки независимо от размера связи;
//   - агрегаты — count(*) по связи без материализации строк.
//
// Полная дочерняя коллекция никогда не загружается. Идентификаторы таблиц и колонок
// задаются только константами пакета, пользовательский ввод идёт параметрами запроса.
package projection

import (
	"fmt"
	"strings"
)

// Relation — дочерняя связь с составным ключом (actor, entity).
type Relation struct {
	Table        string
	EntityColumn string
	ActorColumn  string
}

var (
	// Likes — лайки поста: likes(user_id, post_id).
	Likes = Relation{Table: "likes", EntityColumn: "post_id", ActorColumn: "user_id"}
	// Bookmarks — закладки поста: bookmarks(user_id, post_id).
	Bookmarks = Relation{Table: "bookmarks", EntityColumn: "post_id", ActorColumn: "user_id"}
	// Comments — комментарии поста (используется только для счётчика).
	Comments = Relation{Table: "comments", EntityColumn: "post_id", ActorColumn: "user_id"}
	// Followers — подписчики пользователя: follows(follower_id, following_id).
	Followers = Relation{Table: "follows", EntityColumn: "following_id", ActorColumn: "follower_id"}
	// Posts — посты пользователя (только счётчик).
	Posts = Relation{Table: "posts", EntityColumn: "user_id", ActorColumn: "user_id"}
)

// Flag возвращает выражение «зритель $viewerParam связан с entity».
func (r Relation) Flag(entity string, viewerParam int) string {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s AND %s.%s = $%d)",
		r.Table, r.Table, r.EntityColumn, entity, r.Table, r.ActorColumn, viewerParam)
}

// Count возвращает выражение «число связей у entity».
func (r Relation) Count(entity string) string {
	return fmt.Sprintf("(SELECT count(*) FROM %s WHERE %s.%s = %s)",
		r.Table, r.Table, r.EntityColumn, entity)
}

// Projection — набор производных колонок для одного типа сущности.
// Порядок колонок: сначала Counts, затем Flags — в порядке объявления.
type Projection struct {
	Counts []Relation
	Flags  []Relation
}

var (
	// Post — likes_count, comments_count, is_liked_by_viewer, is_bookmarked_by_viewer.
	Post = Projection{
		Counts: []Relation{Likes, Comments},
		Flags:  []Relation{Likes, Bookmarks},
	}
	// User — followers_count, posts_count, is_followed_by_viewer.
	User = Projection{
		Counts: []Relation{Followers, Posts},
		Flags:  []Relation{Followers},
	}
	// LikeInfo — likes_count, is_liked_by_viewer.
	LikeInfo = Projection{
		Counts: []Relation{Likes},
		Flags:  []Relation{Likes},
	}
	// BookmarkInfo — is_bookmarked_by_viewer.
	BookmarkInfo = Projection{
		Flags: []Relation{Bookmarks},
	}
	// FollowerInfo — followers_count, is_followed_by_viewer.
	FollowerInfo = Projection{
		Counts: []Relation{Followers},
		Flags:  []Relation{Followers},
	}
)

// Columns собирает список производных колонок для SELECT, через запятую.
// entity — выражение идентификатора сущности во внешнем запросе (например, "p.id").
func (p Projection) Columns(entity string, viewerParam int) string {
	cols := make([]string, 0, p.Len())

	for _, r := range p.Counts {
		cols = append(cols, r.Count(entity))
	}

	for _, r := range p.Flags {
		cols = append(cols, r.Flag(entity, viewerParam))
	}

	return strings.Join(cols, ",\n\t")
}

// Len — число производных колонок (для проверки порядка сканирования).
func (p Projection) Len() int {
	return len(p.Counts) + len(p.Flags)
}
