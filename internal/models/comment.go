package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — комментарий к посту вместе с автором.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
	Author    User
}
