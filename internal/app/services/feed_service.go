package services

import (
	"context"
	"strings"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

// FeedService handles home-feed posts and time-windowed news items.
type FeedService struct {
	feedStore FeedStore
	users     UserResolver
}

// NewFeedService creates a new feed service instance
func NewFeedService(feedStore FeedStore, users UserResolver) *FeedService {
	return &FeedService{
		feedStore: feedStore,
		users:     users,
	}
}

// CreatePost shares an image post from a room to the feed. The room name
// is snapshotted on the post, matching what the home screen renders.
func (s *FeedService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.ImageURL) == "" {
		return nil, apperrors.NewValidationError("imageUrl is required")
	}

	userID, err := s.users.GetIDByExternalID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		RoomID:   req.RoomID,
		RoomName: strings.TrimSpace(req.RoomName),
		UserID:   userID,
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
	}

	if err := s.feedStore.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPosts retrieves all posts, newest first.
func (s *FeedService) GetPosts(ctx context.Context) ([]*models.Post, error) {
	return s.feedStore.GetAllPosts(ctx)
}

// CreateNews publishes a news item visible while its window is open.
func (s *FeedService) CreateNews(ctx context.Context, req *dto.CreateNewsRequest) (*models.News, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewValidationError("text is required")
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("endDate must be after startDate")
	}

	userID, err := s.users.GetIDByExternalID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	news := &models.News{
		UserID:    userID,
		Text:      strings.TrimSpace(req.Text),
		Link:      req.Link,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.feedStore.CreateNews(ctx, news); err != nil {
		return nil, err
	}
	return news, nil
}

// GetActiveNews retrieves the news items whose window covers now.
func (s *FeedService) GetActiveNews(ctx context.Context) ([]*models.News, error) {
	return s.feedStore.GetActiveNews(ctx)
}
