package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType — причина уведомления.
type NotificationType string

const (
	NotificationLike    NotificationType = "LIKE"
	NotificationFollow  NotificationType = "FOLLOW"
	NotificationComment NotificationType = "COMMENT"
)

// Notification — уведомление получателю от инициатора.
//   - PostID == nil для FOLLOW;
//   - PostExcerpt заполняется при чтении, если пост ещё существует.
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	IssuerID    uuid.UUID
	PostID      *uuid.UUID
	Type        NotificationType
	Read        bool
	CreatedAt   time.Time
	Issuer      User
	PostExcerpt string
}
