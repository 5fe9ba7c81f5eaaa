package models

import "time"

// Post is an image post shared from a room to the home feed.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	RoomID    int64     `json:"roomId" db:"room_id"`
	RoomName  string    `json:"roomName" db:"room_name"` // Snapshot at post time
	UserID    int64     `json:"userId" db:"user_id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Caption   *string   `json:"caption,omitempty" db:"caption"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// News is a time-windowed announcement shown on the home screen. An item
// is active while the current time falls inside [StartDate, EndDate].
type News struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Link      *string   `json:"link,omitempty" db:"link"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
