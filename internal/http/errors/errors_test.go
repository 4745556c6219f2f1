package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/go-social-network/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("service/x/Op: %w", err) }

	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", wrap(service.ErrUnauthorized), http.StatusUnauthorized, "unauthenticated"},
		{"invalid_argument", wrap(service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{"forbidden", wrap(service.ErrForbidden), http.StatusForbidden, "permission_denied"},
		{"not_found", wrap(service.ErrNotFound), http.StatusNotFound, "not_found"},
		{"already_exists", wrap(service.ErrAlreadyExists), http.StatusConflict, "already_exists"},
		{"internal", wrap(service.ErrInternal), http.StatusInternalServerError, "internal"},
		{"canceled", wrap(context.Canceled), StatusClientClosedRequest, "canceled"},
		{"deadline", wrap(context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"unknown", errors.New("pq: something"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Дедлайн, прошедший через сервис и хранилище, отвечает 504, а не 500.
func TestToHTTP_ServiceDeadline_Returns504(t *testing.T) {
	err := fmt.Errorf("service/feeds/ForYouFeed: %w",
		fmt.Errorf("storage/postgres/posts/ListPosts: %w", context.DeadlineExceeded))

	gotStatus, resp := ToHTTP(err)
	require.Equal(t, http.StatusGatewayTimeout, gotStatus)
	require.Equal(t, "deadline_exceeded", resp.Error.Code)

	rr := httptest.NewRecorder()
	WriteError(rr, httptest.NewRequest(http.MethodGet, "/posts/for-you", nil), err)
	require.Equal(t, http.StatusGatewayTimeout, rr.Code)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_EnvelopeWithRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/for-you", nil)
	req.Header.Set("X-Request-Id", "rid-1")

	WriteError(rr, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Error.Code)
	require.Equal(t, "rid-1", resp.Error.RequestID)
}
