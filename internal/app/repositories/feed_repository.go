package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/pkg/apperrors"
	"github.com/campusconn/backend/internal/pkg/dberrors"
)

// FeedRepository handles database operations for home-feed posts and
// time-windowed news items.
type FeedRepository struct {
	db *pgxpool.Pool
}

// NewFeedRepository creates a new FeedRepository
func NewFeedRepository(db *pgxpool.Pool) *FeedRepository {
	return &FeedRepository{db: db}
}

// CreatePost inserts a new feed post.
func (r *FeedRepository) CreatePost(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (room_id, room_name, user_id, image_url, caption)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		post.RoomID, post.RoomName, post.UserID, post.ImageURL, post.Caption,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("error creating post: %w", err)
	}
	return nil
}

// GetAllPosts retrieves all posts, newest first.
func (r *FeedRepository) GetAllPosts(ctx context.Context) ([]*models.Post, error) {
	queryBuilder := squirrel.Select(
		"id", "room_id", "room_name", "user_id", "image_url", "caption", "created_at",
	).
		From("posts").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(
			&post.ID,
			&post.RoomID,
			&post.RoomName,
			&post.UserID,
			&post.ImageURL,
			&post.Caption,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// CreateNews inserts a new news item.
func (r *FeedRepository) CreateNews(ctx context.Context, news *models.News) error {
	query := `
		INSERT INTO news (user_id, text, link, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		news.UserID, news.Text, news.Link, news.StartDate, news.EndDate,
	).Scan(&news.ID, &news.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating news: %w", err)
	}
	return nil
}

// GetActiveNews retrieves news items whose window covers the current time.
func (r *FeedRepository) GetActiveNews(ctx context.Context) ([]*models.News, error) {
	queryBuilder := squirrel.Select(
		"id", "user_id", "text", "link", "start_date", "end_date", "created_at",
	).
		From("news").
		Where("start_date <= NOW() AND end_date >= NOW()").
		OrderBy("start_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	items := []*models.News{}
	for rows.Next() {
		var news models.News
		if err := rows.Scan(
			&news.ID,
			&news.UserID,
			&news.Text,
			&news.Link,
			&news.StartDate,
			&news.EndDate,
			&news.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &news)
	}
	return items, rows.Err()
}
