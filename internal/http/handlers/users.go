package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	"github.com/pribylovaa/go-social-network/internal/http/dto"
	"github.com/pribylovaa/go-social-network/internal/service"
)

func (h *Handlers) UserByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.UserByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UserViewFromModel(*user))
}

func (h *Handlers) SuggestedUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.SuggestedUsers(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UserViewsFromModel(users))
}

func (h *Handlers) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var in dto.CreateProfileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	user, err := h.Service.CreateProfile(r.Context(), service.CreateProfileInput{
		Username:    in.Username,
		DisplayName: in.DisplayName,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserFromModel(*user))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in dto.UpdateProfileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), service.UpdateProfileInput{
		DisplayName: in.DisplayName,
		Bio:         in.Bio,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromModel(*user))
}

func (h *Handlers) AvatarPresign(w http.ResponseWriter, r *http.Request) {
	var in dto.PresignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	info, err := h.Service.AvatarUploadURL(r.Context(), service.UploadURLInput{
		ContentType:   in.ContentType,
		ContentLength: in.ContentLength,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PresignFromModel(info))
}

func (h *Handlers) AvatarConfirm(w http.ResponseWriter, r *http.Request) {
	var in dto.ConfirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	user, err := h.Service.ConfirmAvatar(r.Context(), in.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromModel(*user))
}
