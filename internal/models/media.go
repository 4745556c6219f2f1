package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaType — тип вложения.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
)

// Media — загруженный в объектное хранилище файл.
//   - PostID == nil, пока вложение не прикреплено к посту (или пост удалён);
//   - Key — ключ объекта в бакете, URL — стабильная публичная ссылка.
type Media struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PostID    *uuid.UUID
	Key       string
	URL       string
	Type      MediaType
	CreatedAt time.Time
}

// UploadInfo — данные для presigned PUT загрузки.
//   - UploadURL: конечная URL для PUT-запроса;
//   - Key: ключ будущего объекта;
//   - Expires: время жизни подписи;
//   - RequiredHeader: заголовки, которые клиент обязан передать при PUT.
type UploadInfo struct {
	UploadURL      string
	Key            string
	Expires        time.Duration
	RequiredHeader map[string]string
}
