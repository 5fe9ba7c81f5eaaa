package dto

import (
	"time"

	"github.com/campusconn/backend/internal/app/models"
)

// CreatePostRequest is the body of POST /createPost.
type CreatePostRequest struct {
	RoomName string  `json:"roomName" binding:"required" example:"placement-prep"`
	RoomID   int64   `json:"roomId" binding:"required" example:"7"`
	ImageURL string  `json:"imageUrl" binding:"required"`
	Caption  *string `json:"caption,omitempty"`
	UserID   string  `json:"userId" binding:"required" example:"user_2aB3cD4eF"`
}

// CreateNewsRequest is the body of POST /news.
type CreateNewsRequest struct {
	UserID    string    `json:"userId" binding:"required" example:"user_2aB3cD4eF"`
	Text      string    `json:"text" binding:"required"`
	Link      *string   `json:"link,omitempty"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// ActiveNewsResponse wraps GET /news/active, matching the shape the
// mobile client reads ("news" key).
type ActiveNewsResponse struct {
	News []*models.News `json:"news"`
}
