package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-social-network/internal/http/errors"
	"github.com/pribylovaa/go-social-network/internal/http/dto"
	"github.com/pribylovaa/go-social-network/internal/service"
)

func (h *Handlers) MediaPresign(w http.ResponseWriter, r *http.Request) {
	var in dto.PresignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	info, err := h.Service.MediaUploadURL(r.Context(), service.UploadURLInput{
		ContentType:   in.ContentType,
		ContentLength: in.ContentLength,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PresignFromModel(info))
}

func (h *Handlers) MediaConfirm(w http.ResponseWriter, r *http.Request) {
	var in dto.ConfirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	media, err := h.Service.ConfirmMedia(r.Context(), in.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.MediaResponseFromModel(media))
}
