package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	"github.com/pribylovaa/go-social-network/internal/http/dto"
)

func (h *Handlers) ForYouFeed(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.ForYouFeed(r.Context(), cursorParam(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PostsPageFromModel(page))
}

func (h *Handlers) FollowingFeed(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.FollowingFeed(r.Context(), cursorParam(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PostsPageFromModel(page))
}

func (h *Handlers) Bookmarks(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.Bookmarks(r.Context(), cursorParam(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BookmarksPageFromModel(page))
}

func (h *Handlers) UserPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	page, err := h.Service.UserPosts(r.Context(), id, cursorParam(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PostsPageFromModel(page))
}

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.Search(r.Context(), r.URL.Query().Get("q"), cursorParam(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PostsPageFromModel(page))
}
