package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	"github.com/pribylovaa/go-social-network/internal/http/dto"
)

func (h *Handlers) Notifications(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.Notifications(r.Context(), cursorParam(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NotificationsPageFromModel(page))
}

func (h *Handlers) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Service.UnreadNotificationsCount(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UnreadCount{UnreadCount: n})
}

func (h *Handlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.MarkNotificationsRead(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
