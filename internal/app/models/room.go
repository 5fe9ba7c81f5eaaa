package models

import "time"

// RoomPermission controls who may change room settings.
type RoomPermission string

const (
	PermissionEveryone  RoomPermission = "everyone"
	PermissionAdminOnly RoomPermission = "adminOnly"
)

// Room represents a named group-chat room. Room names are unique and the
// creator is always a member.
type Room struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"roomName" db:"name" example:"placement-prep"`
	Description *string        `json:"roomDescription,omitempty" db:"description"`
	ImageLink   *string        `json:"imageLink,omitempty" db:"image_link"`
	CreatorID   int64          `json:"roomCreator" db:"creator_id"`
	Permission  RoomPermission `json:"permission" db:"permission"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`

	// Related entities
	Creator *User   `json:"creator,omitempty"`
	Members []*User `json:"members,omitempty"`
}

// RoomMember represents one row of the room membership set.
type RoomMember struct {
	RoomID   int64     `json:"roomId" db:"room_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}
