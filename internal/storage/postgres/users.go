package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/projection"
	"github.com/pribylovaa/go-social-network/internal/storage"
)

// userSelect возвращает SELECT пользователя в проекции зрителя $viewerParam.
func userSelect(viewerParam int) string {
	return `SELECT ` + userColumns + `,
	` + projection.User.Columns("u.id", viewerParam) + `
	FROM users u`
}

func userViewDest(dst *models.UserView) []any {
	return append(scanUser(&dst.User), &dst.FollowersCount, &dst.PostsCount, &dst.IsFollowedByViewer)
}

// CreateUser создаёт профиль.
// Ошибки: storage.ErrAlreadyExists при конфликте id или username.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "storage/postgres/users/CreateUser"

	var created models.User
	err := s.db.QueryRow(ctx, `
	INSERT INTO users AS u (id, username, display_name, bio, avatar_url)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING `+userColumns,
		user.ID, user.Username, user.DisplayName, user.Bio, user.AvatarURL,
	).Scan(scanUser(&created)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	created.CreatedAt = created.CreatedAt.UTC()

	return &created, nil
}

// UserByUsername ищет пользователя без учёта регистра.
// Ошибки: storage.ErrNotFound.
func (s *Storage) UserByUsername(ctx context.Context, viewerID uuid.UUID, username string) (*models.UserView, error) {
	const op = "storage/postgres/users/UserByUsername"

	var u models.UserView
	err := s.db.QueryRow(ctx, userSelect(1)+` WHERE lower(u.username) = lower($2)`, viewerID, username).
		Scan(userViewDest(&u)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	u.CreatedAt = u.CreatedAt.UTC()

	return &u, nil
}

// UpdateUser выполняет частичный апдейт: обновляет только поля,
// указанные непустыми pointer-полями. Пустой апдейт возвращает профиль как есть.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UpdateUser(ctx context.Context, userID uuid.UUID, update storage.UserUpdate) (*models.User, error) {
	const op = "storage/postgres/users/UpdateUser"

	b := &builder{}
	sets := make([]string, 0, 3)

	if update.DisplayName != nil {
		sets = append(sets, "display_name = "+b.arg(*update.DisplayName))
	}

	if update.Bio != nil {
		sets = append(sets, "bio = "+b.arg(*update.Bio))
	}

	if update.AvatarURL != nil {
		sets = append(sets, "avatar_url = "+b.arg(*update.AvatarURL))
	}

	var q string
	if len(sets) == 0 {
		q = `SELECT ` + userColumns + ` FROM users u WHERE u.id = ` + b.arg(userID)
	} else {
		q = fmt.Sprintf(`UPDATE users AS u SET %s WHERE u.id = %s RETURNING %s`,
			strings.Join(sets, ", "), b.arg(userID), userColumns)
	}

	var u models.User
	if err := s.db.QueryRow(ctx, q, b.args...).Scan(scanUser(&u)...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	u.CreatedAt = u.CreatedAt.UTC()

	return &u, nil
}

// SuggestedUsers возвращает пользователей, на которых зритель не подписан,
// самых популярных первыми.
func (s *Storage) SuggestedUsers(ctx context.Context, viewerID uuid.UUID, limit int) ([]models.UserView, error) {
	const op = "storage/postgres/users/SuggestedUsers"

	q := userSelect(1) + `
	WHERE u.id <> $1
	AND NOT ` + projection.Followers.Flag("u.id", 1) + `
	ORDER BY ` + projection.Followers.Count("u.id") + ` DESC, u.created_at DESC, u.id DESC
	LIMIT $2`

	rows, err := s.db.Query(ctx, q, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	defer rows.Close()

	out := make([]models.UserView, 0)
	for rows.Next() {
		var u models.UserView
		if err := rows.Scan(userViewDest(&u)...); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		u.CreatedAt = u.CreatedAt.UTC()
		out = append(out, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return out, nil
}
