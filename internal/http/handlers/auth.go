package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
)

// Logout отзывает текущую сессию и очищает cookie сессии.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Logout(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if h.AuthCookie != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     h.AuthCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	w.WriteHeader(http.StatusNoContent)
}
