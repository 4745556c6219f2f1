package dto

import (
	"github.com/pribylovaa/go-social-network/internal/models"
	"github.com/pribylovaa/go-social-network/internal/pager"
)

func UserFromModel(u models.User) User {
	return User{
		ID:          u.ID.String(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
	}
}

func UserViewFromModel(u models.UserView) UserView {
	return UserView{
		User:               UserFromModel(u.User),
		Followers:          u.FollowersCount,
		Posts:              u.PostsCount,
		IsFollowedByViewer: u.IsFollowedByViewer,
	}
}

func UserViewsFromModel(users []models.UserView) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, UserViewFromModel(u))
	}

	return out
}

func MediaFromModel(m models.Media) Media {
	return Media{
		ID:   m.ID.String(),
		URL:  m.URL,
		Type: string(m.Type),
	}
}

func MediaResponseFromModel(m *models.Media) MediaResponse {
	if m == nil {
		return MediaResponse{}
	}

	return MediaResponse{Media: MediaFromModel(*m), CreatedAt: m.CreatedAt}
}

func PostFromModel(p models.PostView) Post {
	attachments := make([]Media, 0, len(p.Attachments))
	for _, m := range p.Attachments {
		attachments = append(attachments, MediaFromModel(m))
	}

	return Post{
		ID:                   p.ID.String(),
		Content:              p.Content,
		CreatedAt:            p.CreatedAt,
		User:                 UserFromModel(p.Author),
		Attachments:          attachments,
		Likes:                p.LikesCount,
		Comments:             p.CommentsCount,
		IsLikedByViewer:      p.IsLikedByViewer,
		IsBookmarkedByViewer: p.IsBookmarkedByViewer,
	}
}

func PostsPageFromModel(p *pager.Page[models.PostView]) PostsPage {
	page := pager.Map(p, PostFromModel)

	return PostsPage{Posts: page.Items, NextCursor: page.NextCursor}
}

// BookmarksPageFromModel — страница закладок в форме страницы постов;
// курсор остаётся идентификатором закладки.
func BookmarksPageFromModel(p *pager.Page[models.Bookmark]) PostsPage {
	page := pager.Map(p, func(b models.Bookmark) Post { return PostFromModel(b.Post) })

	return PostsPage{Posts: page.Items, NextCursor: page.NextCursor}
}

func CommentFromModel(c models.Comment) Comment {
	return Comment{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		User:      UserFromModel(c.Author),
	}
}

func CommentsPageFromModel(p *pager.Page[models.Comment]) CommentsPage {
	page := pager.Map(p, CommentFromModel)

	return CommentsPage{Comments: page.Items, PreviousCursor: page.NextCursor}
}

func NotificationFromModel(n models.Notification) Notification {
	out := Notification{
		ID:          n.ID.String(),
		Type:        string(n.Type),
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
		Issuer:      UserFromModel(n.Issuer),
		PostExcerpt: n.PostExcerpt,
	}

	if n.PostID != nil {
		id := n.PostID.String()
		out.PostID = &id
	}

	return out
}

func NotificationsPageFromModel(p *pager.Page[models.Notification]) NotificationsPage {
	page := pager.Map(p, NotificationFromModel)

	return NotificationsPage{Notifications: page.Items, NextCursor: page.NextCursor}
}

func TopicsFromModel(topics []models.Topic) []Topic {
	out := make([]Topic, 0, len(topics))
	for _, t := range topics {
		out = append(out, Topic{Hashtag: t.Hashtag, Count: t.Count})
	}

	return out
}

func PresignFromModel(u *models.UploadInfo) PresignResponse {
	if u == nil {
		return PresignResponse{}
	}

	return PresignResponse{
		UploadURL:      u.UploadURL,
		Key:            u.Key,
		ExpiresSeconds: int64(u.Expires.Seconds()),
		RequiredHeader: u.RequiredHeader,
	}
}
