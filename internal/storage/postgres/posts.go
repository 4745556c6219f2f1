package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/projection"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// userColumns — колонки автора, alias u.
const userColumns = `u.id, u.username, u.display_name, u.bio, u.avatar_url, u.created_at`

// postColumns — колонки поста и автора. За ними следуют projection.Post.Columns.
const postColumns = `p.id, p.user_id, p.content, p.created_at, ` + userColumns

// postSelect возвращает SELECT поста в проекции зрителя $viewerParam.
func postSelect(viewerParam int) string {
	return `SELECT ` + postColumns + `,
	` + projection.Post.Columns("p.id", viewerParam) + `
	FROM posts p
	JOIN users u ON u.id = p.user_id`
}

func scanUser(dst *models.User) []any {
	return []any{&dst.ID, &dst.Username, &dst.DisplayName, &dst.Bio, &dst.AvatarURL, &dst.CreatedAt}
}

// postDest — порядок сканирования postSelect.
func postDest(dst *models.PostView) []any {
	out := []any{&dst.ID, &dst.UserID, &dst.Content, &dst.CreatedAt}
	out = append(out, scanUser(&dst.Author)...)

	return append(out,
		&dst.LikesCount,
		&dst.CommentsCount,
		&dst.IsLikedByViewer,
		&dst.IsBookmarkedByViewer,
	)
}

func normalizePost(p *models.PostView) {
	p.CreatedAt = p.CreatedAt.UTC()
	p.Author.CreatedAt = p.Author.CreatedAt.UTC()
	if p.Attachments == nil {
		p.Attachments = []models.Media{}
	}
}

// ListPosts возвращает посты в проекции зрителя.
// Битый курсор даёт пустую выборку.
func (s *Storage) ListPosts(ctx context.Context, viewerID uuid.UUID, filter storage.PostFilter, cursor string, limit int) ([]models.PostView, error) {
	const op = "storage/postgres/posts/ListPosts"

	cur, ok := cursorID(cursor)
	if !ok || limit <= 0 {
		return []models.PostView{}, nil
	}

	b := &builder{}
	b.arg(viewerID)

	if filter.AuthorID != nil {
		b.and("p.user_id = " + b.arg(*filter.AuthorID))
	}

	if filter.FollowedBy != nil {
		b.and("EXISTS (SELECT 1 FROM follows f WHERE f.following_id = p.user_id AND f.follower_id = " +
			b.arg(*filter.FollowedBy) + ")")
	}

	if filter.Query != "" {
		tsq := "to_tsquery('simple', " + b.arg(filter.Query) + ")"
		b.and("(to_tsvector('simple', p.content) @@ " + tsq +
			" OR to_tsvector('simple', u.username || ' ' || u.display_name) @@ " + tsq + ")")
	}

	b.after("p", "posts", cur)

	q := postSelect(1) + `
	` + b.clause() + `
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT ` + b.arg(limit)

	posts, err := s.queryPosts(ctx, s.db, q, b.args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

// PostByID возвращает пост в проекции зрителя.
// Ошибки: storage.ErrNotFound.
func (s *Storage) PostByID(ctx context.Context, viewerID, postID uuid.UUID) (*models.PostView, error) {
	const op = "storage/postgres/posts/PostByID"

	posts, err := s.queryPosts(ctx, s.db, postSelect(1)+` WHERE p.id = $2`, viewerID, postID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(posts) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &posts[0], nil
}

// queryPosts выполняет выборку постов и догружает вложения страницы одним запросом.
func (s *Storage) queryPosts(ctx context.Context, q querier, sql string, args ...any) ([]models.PostView, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	posts := make([]models.PostView, 0)
	for rows.Next() {
		var p models.PostView
		if err := rows.Scan(postDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if err := s.attachMedia(ctx, q, posts); err != nil {
		return nil, err
	}

	for i := range posts {
		normalizePost(&posts[i])
	}

	return posts, nil
}

// attachMedia заполняет Attachments у постов страницы.
func (s *Storage) attachMedia(ctx context.Context, q querier, posts []models.PostView) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(posts))
	index := make(map[uuid.UUID]int, len(posts))
	for i, p := range posts {
		ids = append(ids, p.ID)
		index[p.ID] = i
	}

	media, err := queryMedia(ctx, q, `SELECT `+mediaColumns+` FROM media m
	WHERE m.post_id = ANY($1)
	ORDER BY m.created_at, m.id`, ids)
	if err != nil {
		return fmt.Errorf("attachments: %w", err)
	}

	for _, m := range media {
		if m.PostID == nil {
			continue
		}

		if i, ok := index[*m.PostID]; ok {
			posts[i].Attachments = append(posts[i].Attachments, m)
		}
	}

	return nil
}

// CreatePost вставляет пост и прикрепляет вложения в одной транзакции.
// Ошибки: storage.ErrInvalidArgument, если хотя бы одно вложение не прикрепилось.
func (s *Storage) CreatePost(ctx context.Context, post *models.Post, mediaIDs []uuid.UUID) (*models.Post, error) {
	const op = "storage/postgres/posts/CreatePost"

	ids := uniqueIDs(mediaIDs)

	var created models.Post
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
		INSERT INTO posts (user_id, content)
		VALUES ($1, $2)
		RETURNING id, user_id, content, created_at
		`, post.UserID, post.Content)

		if err := row.Scan(&created.ID, &created.UserID, &created.Content, &created.CreatedAt); err != nil {
			return mapError(err)
		}

		if len(ids) == 0 {
			return nil
		}

		tag, err := tx.Exec(ctx, `
		UPDATE media SET post_id = $1
		WHERE id = ANY($2) AND user_id = $3 AND post_id IS NULL
		`, created.ID, ids, post.UserID)
		if err != nil {
			return mapError(err)
		}

		if tag.RowsAffected() != int64(len(ids)) {
			return storage.ErrInvalidArgument
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created.CreatedAt = created.CreatedAt.UTC()

	return &created, nil
}

// DeletePost удаляет пост владельца. Вложения открепляются (ON DELETE SET NULL)
// и позже удаляются уборщиком.
func (s *Storage) DeletePost(ctx context.Context, postID, ownerID uuid.UUID) error {
	const op = "storage/postgres/posts/DeletePost"

	if err := deleteOwned(ctx, s.db, "posts", postID, ownerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListBookmarks возвращает закладки зрителя в порядке добавления (новые первыми).
func (s *Storage) ListBookmarks(ctx context.Context, viewerID uuid.UUID, cursor string, limit int) ([]models.Bookmark, error) {
	const op = "storage/postgres/posts/ListBookmarks"

	cur, ok := cursorID(cursor)
	if !ok || limit <= 0 {
		return []models.Bookmark{}, nil
	}

	b := &builder{}
	b.and("b.user_id = " + b.arg(viewerID))
	b.after("b", "bookmarks", cur)

	q := `SELECT b.id, b.user_id, b.created_at, ` + postColumns + `,
	` + projection.Post.Columns("p.id", 1) + `
	FROM bookmarks b
	JOIN posts p ON p.id = b.post_id
	JOIN users u ON u.id = p.user_id
	` + b.clause() + `
	ORDER BY b.created_at DESC, b.id DESC
	LIMIT ` + b.arg(limit)

	rows, err := s.db.Query(ctx, q, b.args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	defer rows.Close()

	out := make([]models.Bookmark, 0)
	for rows.Next() {
		var bm models.Bookmark
		dest := append([]any{&bm.ID, &bm.UserID, &bm.CreatedAt}, postDest(&bm.Post)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		bm.CreatedAt = bm.CreatedAt.UTC()
		out = append(out, bm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	posts := make([]models.PostView, len(out))
	for i := range out {
		posts[i] = out[i].Post
	}

	if err := s.attachMedia(ctx, s.db, posts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range out {
		out[i].Post = posts[i]
		normalizePost(&out[i].Post)
	}

	return out, nil
}

// TrendingTopics считает вхождения хэштегов во всех постах.
// При равенстве — по алфавиту.
func (s *Storage) TrendingTopics(ctx context.Context, limit int) ([]models.Topic, error) {
	const op = "storage/postgres/posts/TrendingTopics"

	rows, err := s.db.Query(ctx, `
	SELECT lower(m[1]) AS hashtag, count(*) AS cnt
	FROM posts p, regexp_matches(p.content, '(#[[:alnum:]_]+)', 'g') AS m
	GROUP BY hashtag
	ORDER BY cnt DESC, hashtag ASC
	LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]models.Topic, 0)
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.Hashtag, &t.Count); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		out = append(out, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return out, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
