// dto — JSON-представления REST API social-service.
//
// Страницы: {<items>: [...], "nextCursor": string|null}; у комментариев курсор
// называется previousCursor (ведёт к более старым комментариям).
package dto

import "time"

// Пользователь.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Пользователь в проекции зрителя.
type UserView struct {
	User
	Followers          int64 `json:"followers"`
	Posts              int64 `json:"posts"`
	IsFollowedByViewer bool  `json:"isFollowedByUser"`
}

type Media struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Пост в проекции зрителя.
type Post struct {
	ID                   string    `json:"id"`
	Content              string    `json:"content"`
	CreatedAt            time.Time `json:"createdAt"`
	User                 User      `json:"user"`
	Attachments          []Media   `json:"attachments"`
	Likes                int64     `json:"likes"`
	Comments             int64     `json:"comments"`
	IsLikedByViewer      bool      `json:"isLikedByUser"`
	IsBookmarkedByViewer bool      `json:"isBookmarkedByUser"`
}

type PostsPage struct {
	Posts      []Post  `json:"posts"`
	NextCursor *string `json:"nextCursor"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `json:"user"`
}

type CommentsPage struct {
	Comments       []Comment `json:"comments"`
	PreviousCursor *string   `json:"previousCursor"`
}

type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
	Issuer      User      `json:"issuer"`
	PostID      *string   `json:"postId"`
	PostExcerpt string    `json:"postExcerpt,omitempty"`
}

type NotificationsPage struct {
	Notifications []Notification `json:"notifications"`
	NextCursor    *string        `json:"nextCursor"`
}

type UnreadCount struct {
	UnreadCount int64 `json:"unreadCount"`
}

type LikeInfo struct {
	Likes           int64 `json:"likes"`
	IsLikedByViewer bool  `json:"isLikedByUser"`
}

type BookmarkInfo struct {
	IsBookmarkedByViewer bool `json:"isBookmarkedByUser"`
}

type FollowerInfo struct {
	Followers          int64 `json:"followers"`
	IsFollowedByViewer bool  `json:"isFollowedByUser"`
}

type Topic struct {
	Hashtag string `json:"hashtag"`
	Count   int64  `json:"count"`
}

// Запросы.

type CreatePostRequest struct {
	Content  string   `json:"content"`
	MediaIDs []string `json:"mediaIds"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CreateProfileRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// Частичное обновление: отсутствующее поле не меняется.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

type PresignRequest struct {
	ContentType   string `json:"contentType"`
	ContentLength int64  `json:"contentLength"`
}

type PresignResponse struct {
	UploadURL      string            `json:"uploadUrl"`
	Key            string            `json:"key"`
	ExpiresSeconds int64             `json:"expiresSeconds"`
	RequiredHeader map[string]string `json:"requiredHeaders"`
}

type ConfirmRequest struct {
	Key string `json:"key"`
}

type MediaResponse struct {
	Media
	CreatedAt time.Time `json:"createdAt"`
}
