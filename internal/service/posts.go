package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
)

// CreatePostInput — новый пост и вложения зрителя к нему.
type CreatePostInput struct {
	Content  string      `validate:"required,max=2000"`
	MediaIDs []uuid.UUID `validate:"max=5,dive,required"`
}

// CreatePost создаёт пост зрителя и прикрепляет вложения в одной транзакции.
//
// Поведение:
//   - content нормализуется (TrimSpace) и не должен быть пустым;
//   - не больше MaxAttachments вложений, все — неприкреплённые вложения зрителя,
//     иначе ErrInvalidArgument;
//   - возвращает пост в проекции зрителя.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*models.PostView, error) {
	const op = "service/posts/CreatePost"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	input.Content = strings.TrimSpace(input.Content)
	if err := check(lg, op, input); err != nil {
		return nil, err
	}

	post, err := s.storage.CreatePost(ctx, &models.Post{UserID: v.ID, Content: input.Content}, input.MediaIDs)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	view, err := s.storage.PostByID(ctx, v.ID, post.ID)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	lg.Info("post_created", "post_id", post.ID.String(), "attachments", len(view.Attachments))

	return view, nil
}

// DeletePost удаляет пост зрителя. Чужой пост — ErrForbidden.
func (s *Service) DeletePost(ctx context.Context, postID uuid.UUID) error {
	const op = "service/posts/DeletePost"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return err
	}

	lg = lg.With("post_id", postID.String())

	if err := s.storage.DeletePost(ctx, postID, v.ID); err != nil {
		return mapStorageError(lg, op, err)
	}

	lg.Info("post_deleted")

	return nil
}

// TrendingTopics возвращает TrendsLimit самых частых хэштегов.
func (s *Service) TrendingTopics(ctx context.Context) ([]models.Topic, error) {
	const op = "service/posts/TrendingTopics"

	_, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	topics, err := s.storage.TrendingTopics(ctx, TrendsLimit)
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	return topics, nil
}
