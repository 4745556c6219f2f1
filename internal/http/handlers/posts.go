package handlers

import (
	"net/http"

	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	"github.com/pribylovaa/go-social-network/internal/http/dto"
	"github.com/pribylovaa/go-social-network/internal/service"
)

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in dto.CreatePostRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	mediaIDs := make([]uuid.UUID, 0, len(in.MediaIDs))
	for _, raw := range in.MediaIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.WriteError(w, r, apierrors.ErrBadRequest)
			return
		}
		mediaIDs = append(mediaIDs, id)
	}

	post, err := h.Service.CreatePost(r.Context(), service.CreatePostInput{Content: in.Content, MediaIDs: mediaIDs})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PostFromModel(*post))
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	if err := h.Service.DeletePost(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) TrendingTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Service.TrendingTopics(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TopicsFromModel(topics))
}
