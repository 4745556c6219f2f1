package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-social-network/internal/http/handlers"
	"github.com/pribylovaa/go-social-network/internal/http/middleware"
	"github.com/pribylovaa/go-social-network/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger     *slog.Logger
	Timeout    time.Duration
	AuthCookie string
	Metrics    middleware.Observer
	BasePath   string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(), // до логирования
		middleware.Logging(opts.Logger),
		middleware.Metrics(opts.Metrics),
		middleware.Timeout(opts.Timeout),
		middleware.Auth(svc, opts.AuthCookie), // после Logging: дополняет логгер viewer_id
	)

	h := handlers.New(svc, opts.AuthCookie)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// posts
	r.Get("/posts/for-you", h.ForYouFeed)
	r.Get("/posts/following", h.FollowingFeed)
	r.Get("/posts/bookmarked", h.Bookmarks)
	r.Post("/posts", h.CreatePost)
	r.Delete("/posts/{id}", h.DeletePost)
	r.Get("/search", h.Search)
	r.Get("/trends", h.TrendingTopics)

	// comments
	r.Get("/posts/{id}/comments", h.Comments)
	r.Post("/posts/{id}/comments", h.CreateComment)
	r.Delete("/comments/{id}", h.DeleteComment)

	// relations
	r.Get("/posts/{id}/likes", h.LikeInfo)
	r.Post("/posts/{id}/likes", h.Like)
	r.Delete("/posts/{id}/likes", h.Unlike)
	r.Get("/posts/{id}/bookmark", h.BookmarkInfo)
	r.Post("/posts/{id}/bookmark", h.Bookmark)
	r.Delete("/posts/{id}/bookmark", h.Unbookmark)
	r.Get("/users/{id}/followers", h.FollowerInfo)
	r.Post("/users/{id}/followers", h.Follow)
	r.Delete("/users/{id}/followers", h.Unfollow)

	// users
	r.Post("/users", h.CreateProfile)
	r.Patch("/users/me", h.UpdateProfile)
	r.Post("/users/me/avatar/presign", h.AvatarPresign)
	r.Post("/users/me/avatar", h.AvatarConfirm)
	r.Get("/users/suggestions", h.SuggestedUsers)
	r.Get("/users/username/{username}", h.UserByUsername)
	r.Get("/users/{id}/posts", h.UserPosts)

	// notifications
	r.Get("/notifications", h.Notifications)
	r.Get("/notifications/unread-count", h.UnreadCount)
	r.Patch("/notifications/mark-as-read", h.MarkRead)

	// media
	r.Post("/media/presign", h.MediaPresign)
	r.Post("/media/confirm", h.MediaConfirm)

	// auth
	r.Post("/auth/logout", h.Logout)
}
