package models

import "time"

// ContentType represents the kind of payload a message carries.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
	ContentTypeDoc   ContentType = "doc"
)

// IsValid reports whether t is one of the known content types.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeText, ContentTypeImage, ContentTypeVideo, ContentTypeDoc:
		return true
	}
	return false
}

// Message represents an append-only message in a room. Text messages carry
// their body in Content; image/video/doc messages carry the asset URL in
// AssetURL. Messages have no edit or delete lifecycle.
type Message struct {
	ID          int64       `json:"id" db:"id"`
	SenderID    int64       `json:"senderId" db:"sender_id"`
	RoomID      int64       `json:"roomId" db:"room_id"`
	ContentType ContentType `json:"contentType" db:"content_type"`
	Content     string      `json:"content" db:"content"`
	AssetURL    *string     `json:"assetUrl,omitempty" db:"asset_url"`
	Timestamp   time.Time   `json:"timestamp" db:"created_at"`

	// Related entities
	Sender *User `json:"sender,omitempty"`
}
