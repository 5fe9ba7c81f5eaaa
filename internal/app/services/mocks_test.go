package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campusconn/backend/internal/app/models"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	args := m.Called(ctx, externalID)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetIDByExternalID(ctx context.Context, externalID string) (int64, error) {
	args := m.Called(ctx, externalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserStore) UpdateInfo(ctx context.Context, id int64, department, regulation, rollno *string, interests []string) error {
	return m.Called(ctx, id, department, regulation, rollno, interests).Error(0)
}

func (m *mockUserStore) SetDashboardScalar(ctx context.Context, userID int64, category models.DashboardCategory, value float64) error {
	return m.Called(ctx, userID, category, value).Error(0)
}

func (m *mockUserStore) MergeDashboardMap(ctx context.Context, userID int64, category models.DashboardCategory, patch []byte) error {
	return m.Called(ctx, userID, category, patch).Error(0)
}

func (m *mockUserStore) AppendDashboardEntry(ctx context.Context, userID int64, category models.DashboardCategory, entry []byte) error {
	return m.Called(ctx, userID, category, entry).Error(0)
}

func (m *mockUserStore) CreateConnectRequest(ctx context.Context, fromID, toID int64) error {
	return m.Called(ctx, fromID, toID).Error(0)
}

func (m *mockUserStore) AcceptConnectRequest(ctx context.Context, fromID, toID int64) error {
	return m.Called(ctx, fromID, toID).Error(0)
}

type mockRoomStore struct {
	mock.Mock
}

func (m *mockRoomStore) Create(ctx context.Context, room *models.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRoomStore) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	args := m.Called(ctx, id)
	if room := args.Get(0); room != nil {
		return room.(*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomStore) GetAll(ctx context.Context) ([]*models.Room, error) {
	args := m.Called(ctx)
	if rooms := args.Get(0); rooms != nil {
		return rooms.([]*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomStore) GetByMember(ctx context.Context, userID int64) ([]*models.Room, error) {
	args := m.Called(ctx, userID)
	if rooms := args.Get(0); rooms != nil {
		return rooms.([]*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomStore) SearchByName(ctx context.Context, query string) ([]*models.Room, error) {
	args := m.Called(ctx, query)
	if rooms := args.Get(0); rooms != nil {
		return rooms.([]*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomStore) AddMember(ctx context.Context, roomID, userID int64) error {
	return m.Called(ctx, roomID, userID).Error(0)
}

func (m *mockRoomStore) IsMember(ctx context.Context, roomID, userID int64) (bool, error) {
	args := m.Called(ctx, roomID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRoomStore) UpdateName(ctx context.Context, roomID int64, name string) error {
	return m.Called(ctx, roomID, name).Error(0)
}

func (m *mockRoomStore) UpdateImageLink(ctx context.Context, roomID int64, imageLink string) error {
	return m.Called(ctx, roomID, imageLink).Error(0)
}

func (m *mockRoomStore) UpdatePermission(ctx context.Context, roomID int64, permission models.RoomPermission) error {
	return m.Called(ctx, roomID, permission).Error(0)
}

type mockMessageStore struct {
	mock.Mock
}

func (m *mockMessageStore) Create(ctx context.Context, message *models.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockMessageStore) GetByRoomID(ctx context.Context, roomID int64) ([]*models.Message, error) {
	args := m.Called(ctx, roomID)
	if messages := args.Get(0); messages != nil {
		return messages.([]*models.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCampusInfoStore struct {
	mock.Mock
}

func (m *mockCampusInfoStore) Get(ctx context.Context, regulation, department string) (*models.CampusInfo, error) {
	args := m.Called(ctx, regulation, department)
	if info := args.Get(0); info != nil {
		return info.(*models.CampusInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCampusInfoStore) Upsert(ctx context.Context, info *models.CampusInfo) error {
	return m.Called(ctx, info).Error(0)
}

type mockFeedStore struct {
	mock.Mock
}

func (m *mockFeedStore) CreatePost(ctx context.Context, post *models.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockFeedStore) GetAllPosts(ctx context.Context) ([]*models.Post, error) {
	args := m.Called(ctx)
	if posts := args.Get(0); posts != nil {
		return posts.([]*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeedStore) CreateNews(ctx context.Context, news *models.News) error {
	return m.Called(ctx, news).Error(0)
}

func (m *mockFeedStore) GetActiveNews(ctx context.Context) ([]*models.News, error) {
	args := m.Called(ctx)
	if news := args.Get(0); news != nil {
		return news.([]*models.News), args.Error(1)
	}
	return nil, args.Error(1)
}
