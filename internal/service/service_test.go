package service

// Тесты сервисного слоя social-service.
//
//  Проверяем:
//  - ErrUnauthorized без зрителя до любого обращения к хранилищам;
//  - курсорные страницы (размер, курсор продолжения, порядок комментариев);
//  - валидацию входов и маппинг ошибок storage -> service;
//  - сессии, загрузки и уборщик вложений.
//
// Подготовка окружения:
//   go test ./internal/service -v -race -count=1
//
// Примечание: моки сгенерированы в пакете /mocks (MockStorage, MockObjects, MockSessionCache).

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/auth"
	"github.com/pribylovaa/go-social-network/internal/config"
	"github.com/pribylovaa/go-social-network/internal/viewer"
	"github.com/pribylovaa/go-social-network/mocks"
	"github.com/stretchr/testify/require"
)

// stubVerifier — TokenVerifier с заранее заданным ответом.
type stubVerifier struct {
	session *auth.Session
	err     error
}

func (v *stubVerifier) Verify(string) (*auth.Session, error) { return v.session, v.err }

type env struct {
	svc      *Service
	st       *mocks.MockStorage
	objects  *mocks.MockObjects
	sessions *mocks.MockSessionCache
	verifier *stubVerifier
}

func newServiceWithMocks(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)

	e := &env{
		st:       mocks.NewMockStorage(ctrl),
		objects:  mocks.NewMockObjects(ctrl),
		sessions: mocks.NewMockSessionCache(ctrl),
		verifier: &stubVerifier{},
	}
	cfg := &config.Config{
		Media: config.MediaConfig{OrphanTTL: time.Hour, JanitorInterval: time.Minute},
	}
	e.svc = New(e.st, e.objects, e.sessions, e.verifier, cfg)

	return e
}

// asViewer — контекст с аутентифицированным зрителем.
func asViewer(id uuid.UUID) context.Context {
	return viewer.Into(context.Background(), viewer.Viewer{
		ID:        id,
		SessionID: "sess-" + id.String()[:8],
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

// Любая операция без зрителя: ErrUnauthorized и ни одного вызова моков.
func TestService_NoViewer_Unauthorized(t *testing.T) {
	e := newServiceWithMocks(t)
	ctx := context.Background()
	id := uuid.New()
	bio := "x"

	calls := map[string]func() error{
		"ForYouFeed":     func() error { _, err := e.svc.ForYouFeed(ctx, ""); return err },
		"FollowingFeed":  func() error { _, err := e.svc.FollowingFeed(ctx, ""); return err },
		"UserPosts":      func() error { _, err := e.svc.UserPosts(ctx, id, ""); return err },
		"Bookmarks":      func() error { _, err := e.svc.Bookmarks(ctx, ""); return err },
		"Search":         func() error { _, err := e.svc.Search(ctx, "go", ""); return err },
		"EmptySearch":    func() error { _, err := e.svc.Search(ctx, "", ""); return err },
		"Comments":       func() error { _, err := e.svc.Comments(ctx, id, ""); return err },
		"Notifications":  func() error { _, err := e.svc.Notifications(ctx, ""); return err },
		"UnreadCount":    func() error { _, err := e.svc.UnreadNotificationsCount(ctx); return err },
		"MarkRead":       func() error { return e.svc.MarkNotificationsRead(ctx) },
		"UserByUsername": func() error { _, err := e.svc.UserByUsername(ctx, "bob"); return err },
		"LikeInfo":       func() error { _, err := e.svc.LikeInfo(ctx, id); return err },
		"Like":           func() error { _, err := e.svc.Like(ctx, id); return err },
		"Unlike":         func() error { _, err := e.svc.Unlike(ctx, id); return err },
		"BookmarkInfo":   func() error { _, err := e.svc.BookmarkInfo(ctx, id); return err },
		"Bookmark":       func() error { _, err := e.svc.Bookmark(ctx, id); return err },
		"Unbookmark":     func() error { _, err := e.svc.Unbookmark(ctx, id); return err },
		"FollowerInfo":   func() error { _, err := e.svc.FollowerInfo(ctx, id); return err },
		"Follow":         func() error { _, err := e.svc.Follow(ctx, id); return err },
		"Unfollow":       func() error { _, err := e.svc.Unfollow(ctx, id); return err },
		"SuggestedUsers": func() error { _, err := e.svc.SuggestedUsers(ctx); return err },
		"TrendingTopics": func() error { _, err := e.svc.TrendingTopics(ctx); return err },
		"CreatePost":     func() error { _, err := e.svc.CreatePost(ctx, CreatePostInput{Content: "hi"}); return err },
		"DeletePost":     func() error { return e.svc.DeletePost(ctx, id) },
		"CreateComment": func() error {
			_, err := e.svc.CreateComment(ctx, CreateCommentInput{PostID: id, Content: "hi"})
			return err
		},
		"DeleteComment": func() error { return e.svc.DeleteComment(ctx, id) },
		"CreateProfile": func() error {
			_, err := e.svc.CreateProfile(ctx, CreateProfileInput{Username: "bob", DisplayName: "Bob"})
			return err
		},
		"UpdateProfile": func() error { _, err := e.svc.UpdateProfile(ctx, UpdateProfileInput{Bio: &bio}); return err },
		"MediaUploadURL": func() error {
			_, err := e.svc.MediaUploadURL(ctx, UploadURLInput{ContentType: "image/png", ContentLength: 1})
			return err
		},
		"AvatarUploadURL": func() error {
			_, err := e.svc.AvatarUploadURL(ctx, UploadURLInput{ContentType: "image/png", ContentLength: 1})
			return err
		},
		"ConfirmMedia":  func() error { _, err := e.svc.ConfirmMedia(ctx, "media/k"); return err },
		"ConfirmAvatar": func() error { _, err := e.svc.ConfirmAvatar(ctx, "avatars/k"); return err },
		"Logout":        func() error { return e.svc.Logout(ctx) },
	}

	for name, call := range calls {
		err := call()
		require.Error(t, err, name)
		require.True(t, errors.Is(err, ErrUnauthorized), "%s: got %v", name, err)
	}
}
