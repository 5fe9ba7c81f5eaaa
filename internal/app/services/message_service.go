package services

import (
	"context"
	"strings"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

// MessageService handles appending and listing room messages. Messages
// are append-only and the server owns the timestamp.
type MessageService struct {
	messageStore MessageStore
	roomStore    RoomStore
	users        UserResolver
}

// NewMessageService creates a new message service instance
func NewMessageService(messageStore MessageStore, roomStore RoomStore, users UserResolver) *MessageService {
	return &MessageService{
		messageStore: messageStore,
		roomStore:    roomStore,
		users:        users,
	}
}

// SendMessage validates and appends a message. Text messages must carry a
// body; media messages must carry an asset URL (pre-uploaded, or produced
// by the server-side file store and passed in storedAssetURL). The sender
// must be a member of the room.
func (s *MessageService) SendMessage(ctx context.Context, form *dto.SendMessageForm, storedAssetURL string) (*models.Message, error) {
	contentType := models.ContentType(form.MessageType)
	if !contentType.IsValid() {
		return nil, apperrors.ErrInvalidContentType
	}

	senderID, err := s.users.GetIDByExternalID(ctx, form.SenderID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.roomStore.IsMember(ctx, form.RoomID, senderID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.ErrNotRoomMember
	}

	message := &models.Message{
		SenderID:    senderID,
		RoomID:      form.RoomID,
		ContentType: contentType,
	}

	if contentType == models.ContentTypeText {
		body := strings.TrimSpace(form.Message)
		if body == "" {
			return nil, apperrors.ErrEmptyContent
		}
		message.Content = body
	} else {
		assetURL := strings.TrimSpace(form.ImageURL)
		if assetURL == "" {
			assetURL = strings.TrimSpace(storedAssetURL)
		}
		if assetURL == "" {
			return nil, apperrors.NewValidationError("media messages require an asset url or an attached file")
		}
		message.Content = assetURL
		message.AssetURL = &assetURL
	}

	if err := s.messageStore.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessages returns the full history for a room, ascending by
// timestamp. The requesting user must exist; the room must exist.
func (s *MessageService) GetMessages(ctx context.Context, externalUserID string, roomID int64) ([]*models.Message, error) {
	if _, err := s.users.GetIDByExternalID(ctx, externalUserID); err != nil {
		return nil, err
	}

	if _, err := s.roomStore.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	return s.messageStore.GetByRoomID(ctx, roomID)
}
