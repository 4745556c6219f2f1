package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/pager"
	"github.com/pribylovaa/go-social-network/internal/search"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

func postKey(p models.PostView) string { return p.ID.String() }

// listPosts — общая курсорная выборка постов по фильтру.
func (s *Service) listPosts(ctx context.Context, op string, filter func(viewerID uuid.UUID) storage.PostFilter, cursor string) (*pager.Page[models.PostView], error) {
	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	f := filter(v.ID)
	fetch := func(ctx context.Context, cursor string, limit int) ([]models.PostView, error) {
		return s.storage.ListPosts(ctx, v.ID, f, cursor, limit)
	}

	page, err := pager.Fetch(ctx, pager.Request{Cursor: cursor, Size: FeedPageSize}, postKey, fetch)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	lg.Debug("list_posts_ok", "count", len(page.Items), "has_more", page.HasMore())

	return page, nil
}

// ForYouFeed возвращает все посты, новые первыми.
func (s *Service) ForYouFeed(ctx context.Context, cursor string) (*pager.Page[models.PostView], error) {
	const op = "service/feeds/ForYouFeed"

	return s.listPosts(ctx, op, func(uuid.UUID) storage.PostFilter {
		return storage.PostFilter{}
	}, cursor)
}

// FollowingFeed возвращает посты авторов, на которых подписан зритель.
func (s *Service) FollowingFeed(ctx context.Context, cursor string) (*pager.Page[models.PostView], error) {
	const op = "service/feeds/FollowingFeed"

	return s.listPosts(ctx, op, func(viewerID uuid.UUID) storage.PostFilter {
		return storage.PostFilter{FollowedBy: &viewerID}
	}, cursor)
}

// UserPosts возвращает посты пользователя.
// Существование пользователя не проверяется: для неизвестного — пустая страница.
func (s *Service) UserPosts(ctx context.Context, userID uuid.UUID, cursor string) (*pager.Page[models.PostView], error) {
	const op = "service/feeds/UserPosts"

	return s.listPosts(ctx, op, func(uuid.UUID) storage.PostFilter {
		return storage.PostFilter{AuthorID: &userID}
	}, cursor)
}

// Search ищет посты по тексту, username и display_name автора.
// Пустой (после нормализации) запрос даёт пустую страницу без обращения к хранилищу.
func (s *Service) Search(ctx context.Context, raw, cursor string) (*pager.Page[models.PostView], error) {
	const op = "service/feeds/Search"

	if _, _, err := begin(ctx, op); err != nil {
		return nil, err
	}

	q := search.BuildTextQuery(raw)
	if q == "" {
		return &pager.Page[models.PostView]{Items: []models.PostView{}}, nil
	}

	return s.listPosts(ctx, op, func(uuid.UUID) storage.PostFilter {
		return storage.PostFilter{Query: q}
	}, cursor)
}

// Bookmarks возвращает закладки зрителя по времени добавления; курсор — ID закладки.
func (s *Service) Bookmarks(ctx context.Context, cursor string) (*pager.Page[models.Bookmark], error) {
	const op = "service/feeds/Bookmarks"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, cursor string, limit int) ([]models.Bookmark, error) {
		return s.storage.ListBookmarks(ctx, v.ID, cursor, limit)
	}

	page, err := pager.Fetch(ctx, pager.Request{Cursor: cursor, Size: FeedPageSize},
		func(b models.Bookmark) string { return b.ID.String() }, fetch)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	return page, nil
}
