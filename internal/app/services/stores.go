package services

import (
	"context"

	"github.com/campusconn/backend/internal/app/models"
)

// Store interfaces consumed by the services. The concrete pgx
// repositories satisfy them; tests substitute mocks.

// UserStore is the persistence surface for users, dashboards and the
// social graph.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	GetIDByExternalID(ctx context.Context, externalID string) (int64, error)
	UpdateInfo(ctx context.Context, id int64, department, regulation, rollno *string, interests []string) error
	SetDashboardScalar(ctx context.Context, userID int64, category models.DashboardCategory, value float64) error
	MergeDashboardMap(ctx context.Context, userID int64, category models.DashboardCategory, patch []byte) error
	AppendDashboardEntry(ctx context.Context, userID int64, category models.DashboardCategory, entry []byte) error
	CreateConnectRequest(ctx context.Context, fromID, toID int64) error
	AcceptConnectRequest(ctx context.Context, fromID, toID int64) error
}

// UserResolver is the part of the user store other services need: mapping
// the external auth id carried by every request to the internal id.
type UserResolver interface {
	GetIDByExternalID(ctx context.Context, externalID string) (int64, error)
}

// RoomStore is the persistence surface for rooms and memberships.
type RoomStore interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetAll(ctx context.Context) ([]*models.Room, error)
	GetByMember(ctx context.Context, userID int64) ([]*models.Room, error)
	SearchByName(ctx context.Context, query string) ([]*models.Room, error)
	AddMember(ctx context.Context, roomID, userID int64) error
	IsMember(ctx context.Context, roomID, userID int64) (bool, error)
	UpdateName(ctx context.Context, roomID int64, name string) error
	UpdateImageLink(ctx context.Context, roomID int64, imageLink string) error
	UpdatePermission(ctx context.Context, roomID int64, permission models.RoomPermission) error
}

// MessageStore is the persistence surface for room messages.
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	GetByRoomID(ctx context.Context, roomID int64) ([]*models.Message, error)
}

// CampusInfoStore is the persistence surface for campus reference data.
type CampusInfoStore interface {
	Get(ctx context.Context, regulation, department string) (*models.CampusInfo, error)
	Upsert(ctx context.Context, info *models.CampusInfo) error
}

// FeedStore is the persistence surface for posts and news.
type FeedStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetAllPosts(ctx context.Context) ([]*models.Post, error)
	CreateNews(ctx context.Context, news *models.News) error
	GetActiveNews(ctx context.Context) ([]*models.News, error)
}
