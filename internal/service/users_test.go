package service

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestCreateProfile(t *testing.T) {
	uid := uuid.New()

	invalid := []CreateProfileInput{
		{Username: "", DisplayName: "Bob"},
		{Username: "ab", DisplayName: "Bob"},
		{Username: "bob smith", DisplayName: "Bob"},
		{Username: "bob!", DisplayName: "Bob"},
		{Username: strings.Repeat("a", 33), DisplayName: "Bob"},
		{Username: "bob", DisplayName: "   "},
	}
	for _, in := range invalid {
		e := newServiceWithMocks(t)

		_, err := e.svc.CreateProfile(asViewer(uid), in)
		require.ErrorIs(t, err, ErrInvalidArgument, "%+v", in)
	}

	t.Run("ok", func(t *testing.T) {
		e := newServiceWithMocks(t)

		want := &models.User{ID: uid, Username: "bob_1", DisplayName: "Bob"}
		e.st.EXPECT().CreateUser(gomock.Any(), want).Return(want, nil)

		user, err := e.svc.CreateProfile(asViewer(uid), CreateProfileInput{Username: " bob_1 ", DisplayName: " Bob "})
		require.NoError(t, err)
		require.Equal(t, "bob_1", user.Username)
	})

	t.Run("taken", func(t *testing.T) {
		e := newServiceWithMocks(t)

		e.st.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyExists)

		_, err := e.svc.CreateProfile(asViewer(uid), CreateProfileInput{Username: "bob", DisplayName: "Bob"})
		require.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestUpdateProfile(t *testing.T) {
	uid := uuid.New()

	t.Run("blank_display_name", func(t *testing.T) {
		e := newServiceWithMocks(t)
		blank := "  "

		_, err := e.svc.UpdateProfile(asViewer(uid), UpdateProfileInput{DisplayName: &blank})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("partial", func(t *testing.T) {
		e := newServiceWithMocks(t)
		bio := " gopher "
		trimmed := "gopher"

		e.st.EXPECT().UpdateUser(gomock.Any(), uid, storage.UserUpdate{Bio: &trimmed}).
			Return(&models.User{ID: uid, Bio: trimmed}, nil)

		user, err := e.svc.UpdateProfile(asViewer(uid), UpdateProfileInput{Bio: &bio})
		require.NoError(t, err)
		require.Equal(t, "gopher", user.Bio)
	})

	t.Run("empty_update", func(t *testing.T) {
		e := newServiceWithMocks(t)

		e.st.EXPECT().UpdateUser(gomock.Any(), uid, storage.UserUpdate{}).Return(&models.User{ID: uid}, nil)

		_, err := e.svc.UpdateProfile(asViewer(uid), UpdateProfileInput{})
		require.NoError(t, err)
	})
}

func TestUserByUsername(t *testing.T) {
	uid := uuid.New()

	t.Run("blank", func(t *testing.T) {
		e := newServiceWithMocks(t)

		_, err := e.svc.UserByUsername(asViewer(uid), "  ")
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("found", func(t *testing.T) {
		e := newServiceWithMocks(t)

		e.st.EXPECT().UserByUsername(gomock.Any(), uid, "Alice").Return(&models.UserView{
			User:               models.User{Username: "alice"},
			FollowersCount:     2,
			IsFollowedByViewer: true,
		}, nil)

		u, err := e.svc.UserByUsername(asViewer(uid), " Alice ")
		require.NoError(t, err)
		require.Equal(t, int64(2), u.FollowersCount)
	})

	t.Run("missing", func(t *testing.T) {
		e := newServiceWithMocks(t)

		e.st.EXPECT().UserByUsername(gomock.Any(), uid, "ghost").Return(nil, storage.ErrNotFound)

		_, err := e.svc.UserByUsername(asViewer(uid), "ghost")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSuggestedUsers(t *testing.T) {
	e := newServiceWithMocks(t)
	uid := uuid.New()

	e.st.EXPECT().SuggestedUsers(gomock.Any(), uid, SuggestionsLimit).Return([]models.UserView{{}, {}}, nil)

	users, err := e.svc.SuggestedUsers(asViewer(uid))
	require.NoError(t, err)
	require.Len(t, users, 2)
}
