package services

import (
	"context"
	"strings"

	"github.com/campusconn/backend/internal/app/models"
	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/pkg/apperrors"
)

// RoomService handles room-related operations: creation, listing,
// search, joining and room-settings updates.
type RoomService struct {
	roomStore RoomStore
	users     UserResolver
}

// NewRoomService creates a new room service instance
func NewRoomService(roomStore RoomStore, users UserResolver) *RoomService {
	return &RoomService{
		roomStore: roomStore,
		users:     users,
	}
}

// CreateRoom creates a room owned by the given creator. The creator
// becomes a member in the same write.
func (s *RoomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error) {
	name := strings.TrimSpace(req.RoomName)
	if name == "" {
		return nil, apperrors.NewValidationError("roomName is required")
	}
	if strings.TrimSpace(req.RoomCreator) == "" {
		return nil, apperrors.NewValidationError("roomCreator is required")
	}

	creatorID, err := s.users.GetIDByExternalID(ctx, req.RoomCreator)
	if err != nil {
		return nil, err
	}

	room := &models.Room{
		Name:        name,
		Description: req.RoomDescription,
		ImageLink:   req.ImageLink,
		CreatorID:   creatorID,
		Permission:  models.PermissionEveryone,
	}

	if err := s.roomStore.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoomByID retrieves one room with its member list.
func (s *RoomService) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid room id")
	}
	return s.roomStore.GetByID(ctx, id)
}

// GetRoomsForUser retrieves the rooms the user is a member of.
func (s *RoomService) GetRoomsForUser(ctx context.Context, externalUserID string) ([]*models.Room, error) {
	userID, err := s.users.GetIDByExternalID(ctx, externalUserID)
	if err != nil {
		return nil, err
	}
	return s.roomStore.GetByMember(ctx, userID)
}

// GetAllRooms retrieves every room, unfiltered.
func (s *RoomService) GetAllRooms(ctx context.Context) ([]*models.Room, error) {
	return s.roomStore.GetAll(ctx)
}

// SearchRooms finds rooms by case-insensitive substring match on name. A
// query with no matches yields an empty list.
func (s *RoomService) SearchRooms(ctx context.Context, query string) ([]*models.Room, error) {
	return s.roomStore.SearchByName(ctx, strings.TrimSpace(query))
}

// JoinRoom adds a user to a room's member set. A repeated join surfaces
// ErrAlreadyMember; the membership set itself never gains duplicates.
func (s *RoomService) JoinRoom(ctx context.Context, req *dto.JoinRoomRequest) error {
	userID, err := s.users.GetIDByExternalID(ctx, req.UserID)
	if err != nil {
		return err
	}

	if _, err := s.roomStore.GetByID(ctx, req.RoomID); err != nil {
		return err
	}

	return s.roomStore.AddMember(ctx, req.RoomID, userID)
}

// ChangeGroupName renames a room.
func (s *RoomService) ChangeGroupName(ctx context.Context, req *dto.ChangeGroupNameRequest) error {
	name := strings.TrimSpace(req.UpdatedRoomName)
	if name == "" {
		return apperrors.NewValidationError("updatedroomName is required")
	}
	return s.roomStore.UpdateName(ctx, req.RoomID, name)
}

// ChangeImageLink replaces a room's image link.
func (s *RoomService) ChangeImageLink(ctx context.Context, req *dto.ChangeImageLinkRequest) error {
	if strings.TrimSpace(req.ImageLink) == "" {
		return apperrors.NewValidationError("imageLink is required")
	}
	return s.roomStore.UpdateImageLink(ctx, req.RoomID, req.ImageLink)
}

// ChangePermission updates who may edit room settings.
func (s *RoomService) ChangePermission(ctx context.Context, req *dto.ChangePermissionRequest) error {
	permission := models.RoomPermission(req.Permission)
	if permission != models.PermissionEveryone && permission != models.PermissionAdminOnly {
		return apperrors.NewValidationError("permission must be 'everyone' or 'adminOnly'")
	}
	return s.roomStore.UpdatePermission(ctx, req.RoomID, permission)
}
