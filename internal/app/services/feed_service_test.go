package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

func TestCreatePost_RequiresImage(t *testing.T) {
	feed := new(mockFeedStore)
	users := new(mockUserStore)
	service := NewFeedService(feed, users)

	_, err := service.CreatePost(context.Background(), &dto.CreatePostRequest{
		RoomName: "placement-prep",
		RoomID:   7,
		UserID:   "ext-1",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	feed.AssertNotCalled(t, "CreatePost")
}

func TestCreatePost_SnapshotsRoomName(t *testing.T) {
	feed := new(mockFeedStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	feed.On("CreatePost", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		return p.RoomName == "placement-prep" && p.RoomID == 7 && p.UserID == 5
	})).Return(nil)

	service := NewFeedService(feed, users)
	post, err := service.CreatePost(context.Background(), &dto.CreatePostRequest{
		RoomName: " placement-prep ",
		RoomID:   7,
		ImageURL: "https://cdn.example.com/pic.jpg",
		UserID:   "ext-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "placement-prep", post.RoomName)
	feed.AssertExpectations(t)
}

func TestCreateNews_WindowMustBeOrdered(t *testing.T) {
	feed := new(mockFeedStore)
	users := new(mockUserStore)
	service := NewFeedService(feed, users)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := service.CreateNews(context.Background(), &dto.CreateNewsRequest{
		UserID:    "ext-1",
		Text:      "exam schedule released",
		StartDate: start,
		EndDate:   start, // not after start
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	feed.AssertNotCalled(t, "CreateNews")
}

func TestCreateNews_Publishes(t *testing.T) {
	feed := new(mockFeedStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	feed.On("CreateNews", mock.Anything, mock.MatchedBy(func(n *models.News) bool {
		return n.UserID == 5 && n.Text == "exam schedule released"
	})).Return(nil)

	service := NewFeedService(feed, users)
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	news, err := service.CreateNews(context.Background(), &dto.CreateNewsRequest{
		UserID:    "ext-1",
		Text:      " exam schedule released ",
		StartDate: start,
		EndDate:   start.Add(72 * time.Hour),
	})

	assert.NoError(t, err)
	assert.Equal(t, "exam schedule released", news.Text)
	feed.AssertExpectations(t)
}

func TestGetActiveNews_PassesThrough(t *testing.T) {
	active := []*models.News{{ID: 1, Text: "exam schedule released"}}

	feed := new(mockFeedStore)
	users := new(mockUserStore)
	feed.On("GetActiveNews", mock.Anything).Return(active, nil)

	service := NewFeedService(feed, users)
	result, err := service.GetActiveNews(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
