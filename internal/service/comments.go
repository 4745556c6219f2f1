package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/pager"
)

// CreateCommentInput — новый комментарий к посту.
type CreateCommentInput struct {
	PostID  uuid.UUID `validate:"required"`
	Content string    `validate:"required,max=1000"`
}

// Comments возвращает страницу комментариев поста.
//
// Страницы идут от новых к старым (курсор ведёт к более старым комментариям),
// внутри страницы комментарии упорядочены от старых к новым.
func (s *Service) Comments(ctx context.Context, postID uuid.UUID, cursor string) (*pager.Page[models.Comment], error) {
	const op = "service/comments/Comments"

	_, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, cursor string, limit int) ([]models.Comment, error) {
		return s.storage.ListComments(ctx, postID, cursor, limit)
	}

	page, err := pager.Fetch(ctx, pager.Request{Cursor: cursor, Size: CommentsPageSize},
		func(c models.Comment) string { return c.ID.String() }, fetch)
	if err != nil {
		return nil, mapStorageError(lg.With("post_id", postID.String()), op, err)
	}

	slices.Reverse(page.Items)

	return page, nil
}

// CreateComment добавляет комментарий зрителя и уведомляет автора поста.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	const op = "service/comments/CreateComment"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return nil, err
	}

	input.Content = strings.TrimSpace(input.Content)
	if err := check(lg, op, input); err != nil {
		return nil, err
	}

	lg = lg.With("post_id", input.PostID.String())

	comment, err := s.storage.CreateComment(ctx, &models.Comment{
		PostID:  input.PostID,
		UserID:  v.ID,
		Content: input.Content,
	})
	if err != nil {
		return nil, mapStorageError(lg, op, err)
	}

	lg.Info("comment_created", "comment_id", comment.ID.String())

	return comment, nil
}

// DeleteComment удаляет комментарий зрителя. Чужой комментарий — ErrForbidden.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	const op = "service/comments/DeleteComment"

	v, lg, err := begin(ctx, op)
	if err != nil {
		return err
	}

	lg = lg.With("comment_id", commentID.String())

	if err := s.storage.DeleteComment(ctx, commentID, v.ID); err != nil {
		return mapStorageError(lg, op, err)
	}

	lg.Info("comment_deleted")

	return nil
}
