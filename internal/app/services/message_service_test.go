package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

func TestSendMessage_RejectsUnknownContentType(t *testing.T) {
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	service := NewMessageService(messages, rooms, users)

	_, err := service.SendMessage(context.Background(), &dto.SendMessageForm{
		SenderID:    "ext-1",
		RoomID:      7,
		MessageType: "audio",
	}, "")

	assert.ErrorIs(t, err, apperrors.ErrInvalidContentType)
	messages.AssertNotCalled(t, "Create")
}

func TestSendMessage_SenderMustBeMember(t *testing.T) {
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("IsMember", mock.Anything, int64(7), int64(5)).Return(false, nil)

	service := NewMessageService(messages, rooms, users)
	_, err := service.SendMessage(context.Background(), &dto.SendMessageForm{
		SenderID:    "ext-1",
		RoomID:      7,
		MessageType: "text",
		Message:     "hello",
	}, "")

	assert.ErrorIs(t, err, apperrors.ErrNotRoomMember)
	messages.AssertNotCalled(t, "Create")
}

func TestSendMessage_TextRequiresBody(t *testing.T) {
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("IsMember", mock.Anything, int64(7), int64(5)).Return(true, nil)

	service := NewMessageService(messages, rooms, users)
	_, err := service.SendMessage(context.Background(), &dto.SendMessageForm{
		SenderID:    "ext-1",
		RoomID:      7,
		MessageType: "text",
		Message:     "   ",
	}, "")

	assert.ErrorIs(t, err, apperrors.ErrEmptyContent)
}

func TestSendMessage_TextAppends(t *testing.T) {
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("IsMember", mock.Anything, int64(7), int64(5)).Return(true, nil)
	messages.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.SenderID == 5 && m.RoomID == 7 &&
			m.ContentType == models.ContentTypeText && m.Content == "anyone up for mock interviews?"
	})).Return(nil)

	service := NewMessageService(messages, rooms, users)
	msg, err := service.SendMessage(context.Background(), &dto.SendMessageForm{
		SenderID:    "ext-1",
		RoomID:      7,
		MessageType: "text",
		Message:     "anyone up for mock interviews?",
	}, "")

	assert.NoError(t, err)
	assert.Nil(t, msg.AssetURL)
	messages.AssertExpectations(t)
}

func TestSendMessage_MediaRequiresAsset(t *testing.T) {
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("IsMember", mock.Anything, int64(7), int64(5)).Return(true, nil)

	service := NewMessageService(messages, rooms, users)
	_, err := service.SendMessage(context.Background(), &dto.SendMessageForm{
		SenderID:    "ext-1",
		RoomID:      7,
		MessageType: "image",
	}, "")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	messages.AssertNotCalled(t, "Create")
}

func TestSendMessage_MediaFallsBackToStoredAsset(t *testing.T) {
	// When the client attaches the asset instead of passing a URL, the
	// server-side stored URL is used.
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("IsMember", mock.Anything, int64(7), int64(5)).Return(true, nil)
	messages.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.ContentType == models.ContentTypeImage &&
			m.Content == "http://localhost:3000/uploads/abc.png" &&
			m.AssetURL != nil && *m.AssetURL == "http://localhost:3000/uploads/abc.png"
	})).Return(nil)

	service := NewMessageService(messages, rooms, users)
	_, err := service.SendMessage(context.Background(), &dto.SendMessageForm{
		SenderID:    "ext-1",
		RoomID:      7,
		MessageType: "image",
	}, "http://localhost:3000/uploads/abc.png")

	assert.NoError(t, err)
	messages.AssertExpectations(t)
}

func TestSendMessage_ExplicitURLWinsOverStoredAsset(t *testing.T) {
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("IsMember", mock.Anything, int64(7), int64(5)).Return(true, nil)
	messages.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.Content == "https://cdn.example.com/pic.jpg"
	})).Return(nil)

	service := NewMessageService(messages, rooms, users)
	_, err := service.SendMessage(context.Background(), &dto.SendMessageForm{
		SenderID:    "ext-1",
		RoomID:      7,
		MessageType: "image",
		ImageURL:    "https://cdn.example.com/pic.jpg",
	}, "http://localhost:3000/uploads/abc.png")

	assert.NoError(t, err)
	messages.AssertExpectations(t)
}

func TestGetMessages_UserMustExist(t *testing.T) {
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ghost").Return(int64(0), apperrors.ErrUserNotFound)

	service := NewMessageService(messages, rooms, users)
	_, err := service.GetMessages(context.Background(), "ghost", 7)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	messages.AssertNotCalled(t, "GetByRoomID")
}

func TestGetMessages_RoomMustExist(t *testing.T) {
	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrRoomNotFound)

	service := NewMessageService(messages, rooms, users)
	_, err := service.GetMessages(context.Background(), "ext-1", 99)

	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestGetMessages_ReturnsHistory(t *testing.T) {
	history := []*models.Message{
		{ID: 1, RoomID: 7, ContentType: models.ContentTypeText, Content: "first"},
		{ID: 2, RoomID: 7, ContentType: models.ContentTypeText, Content: "second"},
	}

	messages := new(mockMessageStore)
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("GetByID", mock.Anything, int64(7)).Return(&models.Room{ID: 7}, nil)
	messages.On("GetByRoomID", mock.Anything, int64(7)).Return(history, nil)

	service := NewMessageService(messages, rooms, users)
	result, err := service.GetMessages(context.Background(), "ext-1", 7)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Content)
}
