package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	"github.com/pribylovaa/go-social-network/internal/http/dto"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// relation — хендлер связи зрителя с сущностью из пути {id}:
// GET читает агрегат, POST ставит связь, DELETE снимает; ответ — агрегат.
func relation[T, D any](call func(ctx context.Context, id uuid.UUID) (*T, error), convert func(T) D) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			apierrors.WriteError(w, r, apierrors.ErrBadRequest)
			return
		}

		info, err := call(r.Context(), id)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, convert(*info))
	}
}

func likeInfo(i models.LikeInfo) dto.LikeInfo {
	return dto.LikeInfo{Likes: i.Likes, IsLikedByViewer: i.IsLikedByViewer}
}

func bookmarkInfo(i models.BookmarkInfo) dto.BookmarkInfo {
	return dto.BookmarkInfo{IsBookmarkedByViewer: i.IsBookmarkedByViewer}
}

func followerInfo(i models.FollowerInfo) dto.FollowerInfo {
	return dto.FollowerInfo{Followers: i.Followers, IsFollowedByViewer: i.IsFollowedByViewer}
}

func (h *Handlers) LikeInfo(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.LikeInfo, likeInfo)(w, r)
}

func (h *Handlers) Like(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.Like, likeInfo)(w, r)
}

func (h *Handlers) Unlike(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.Unlike, likeInfo)(w, r)
}

func (h *Handlers) BookmarkInfo(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.BookmarkInfo, bookmarkInfo)(w, r)
}

func (h *Handlers) Bookmark(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.Bookmark, bookmarkInfo)(w, r)
}

func (h *Handlers) Unbookmark(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.Unbookmark, bookmarkInfo)(w, r)
}

func (h *Handlers) FollowerInfo(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.FollowerInfo, followerInfo)(w, r)
}

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.Follow, followerInfo)(w, r)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	relation(h.Service.Unfollow, followerInfo)(w, r)
}
