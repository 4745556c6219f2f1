package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// Входные структуры профиля.
type CreateProfileInput struct {
	Username    string `validate:"required,min=3,max=32,username"`
	DisplayName string `validate:"required,max=64"`
}

type UpdateProfileInput struct {
	DisplayName *string `validate:"omitnil,min=1,max=64"`
	Bio         *string `validate:"omitnil,max=1000"`
}

// CreateProfile создаёт профиль зрителя при первом входе.
//
// Поведение:
//   - username и display_name нормализуются (TrimSpace);
//   - занятый username или существующий профиль — ErrAlreadyExists.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (*models.User, error) {
	const op = "service/users/CreateProfile"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	input.Username = strings.TrimSpace(input.Username)
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if err := check(lg, op, input); err != nil {
		return nil, err
	}

	user, err := s.storage.CreateUser(ctx, &models.User{
		ID:          v.ID,
		Username:    input.Username,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	lg.Info("profile_created", "username", user.Username)

	return user, nil
}

// UpdateProfile выполняет частичное обновление профиля зрителя.
// Пустой апдейт допустим и возвращает профиль без изменений.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*models.User, error) {
	const op = "service/users/UpdateProfile"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	update := storage.UserUpdate{}
	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		input.DisplayName = &name
		update.DisplayName = &name
	}
	if input.Bio != nil {
		bio := strings.TrimSpace(*input.Bio)
		input.Bio = &bio
		update.Bio = &bio
	}

	if err := check(lg, op, input); err != nil {
		return nil, err
	}

	user, err := s.storage.UpdateUser(ctx, v.ID, update)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	return user, nil
}

// UserByUsername возвращает пользователя в проекции зрителя (без учёта регистра).
func (s *Service) UserByUsername(ctx context.Context, username string) (*models.UserView, error) {
	const op = "service/users/UserByUsername"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		lg.Warn("invalid argument: empty username")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByUsername(ctx, v.ID, username)
	if err != nil {
		return nil, mapStorageError(lg.With("username", username), op, err)
	}

	return user, nil
}

// SuggestedUsers возвращает до SuggestionsLimit пользователей, на которых зритель не подписан.
func (s *Service) SuggestedUsers(ctx context.Context) ([]models.UserView, error) {
	const op = "service/users/SuggestedUsers"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	users, err := s.storage.SuggestedUsers(ctx, v.ID, SuggestionsLimit)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	return users, nil
}
