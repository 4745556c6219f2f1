// models содержит доменные сущности social-service.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — профиль пользователя.
//
// Особенности:
//   - ID выдаёт провайдер идентичности, профиль создаётся при первом входе;
//   - Username уникален без учёта регистра.
type User struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Bio         string
	AvatarURL   string
	CreatedAt   time.Time
}

// UserView — пользователь в проекции зрителя.
type UserView struct {
	User
	FollowersCount     int64
	PostsCount         int64
	IsFollowedByViewer bool
}

// FollowerInfo — агрегат подписчиков пользователя относительно зрителя.
type FollowerInfo struct {
	Followers          int64
	IsFollowedByViewer bool
}
