package models

import (
	"time"

	"github.com/google/uuid"
)

// Post — публикация пользователя.
type Post struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
}

// PostView — пост в проекции зрителя: автор, вложения, агрегаты и флаги.
//
// Инвариант: IsLikedByViewer => LikesCount >= 1 (в пределах одного чтения).
type PostView struct {
	Post
	Author               User
	Attachments          []Media
	LikesCount           int64
	CommentsCount        int64
	IsLikedByViewer      bool
	IsBookmarkedByViewer bool
}

// Bookmark — закладка зрителя на пост; курсор ленты закладок — ID закладки.
type Bookmark struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	Post      PostView
}

// LikeInfo — агрегат лайков поста относительно зрителя.
type LikeInfo struct {
	Likes           int64
	IsLikedByViewer bool
}

// BookmarkInfo — есть ли пост в закладках зрителя.
type BookmarkInfo struct {
	IsBookmarkedByViewer bool
}

// Topic — хэштег и число постов с ним.
type Topic struct {
	Hashtag string
	Count   int64
}
