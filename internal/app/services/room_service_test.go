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

func TestCreateRoom_RequiresNameAndCreator(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	service := NewRoomService(rooms, users)

	_, err := service.CreateRoom(context.Background(), &dto.CreateRoomRequest{RoomCreator: "ext-1"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.CreateRoom(context.Background(), &dto.CreateRoomRequest{RoomName: "placement-prep"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	rooms.AssertNotCalled(t, "Create")
}

func TestCreateRoom_DefaultsToEveryonePermission(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Room) bool {
		return r.Name == "placement-prep" && r.CreatorID == 5 && r.Permission == models.PermissionEveryone
	})).Return(nil)

	service := NewRoomService(rooms, users)
	room, err := service.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		RoomName:    "  placement-prep  ",
		RoomCreator: "ext-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PermissionEveryone, room.Permission)
	rooms.AssertExpectations(t)
}

func TestCreateRoom_DuplicateName(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrRoomAlreadyExists)

	service := NewRoomService(rooms, users)
	_, err := service.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		RoomName:    "placement-prep",
		RoomCreator: "ext-1",
	})

	assert.ErrorIs(t, err, apperrors.ErrRoomAlreadyExists)
}

func TestJoinRoom_RepeatedJoinSurfacesConflict(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("GetByID", mock.Anything, int64(7)).Return(&models.Room{ID: 7}, nil)
	rooms.On("AddMember", mock.Anything, int64(7), int64(5)).Return(apperrors.ErrAlreadyMember)

	service := NewRoomService(rooms, users)
	err := service.JoinRoom(context.Background(), &dto.JoinRoomRequest{UserID: "ext-1", RoomID: 7})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
}

func TestJoinRoom_RoomMustExist(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ext-1").Return(int64(5), nil)
	rooms.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrRoomNotFound)

	service := NewRoomService(rooms, users)
	err := service.JoinRoom(context.Background(), &dto.JoinRoomRequest{UserID: "ext-1", RoomID: 99})

	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	rooms.AssertNotCalled(t, "AddMember")
}

func TestSearchRooms_NoMatchesYieldsEmptyList(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	rooms.On("SearchByName", mock.Anything, "nope").Return([]*models.Room{}, nil)

	service := NewRoomService(rooms, users)
	result, err := service.SearchRooms(context.Background(), "  nope  ")

	assert.NoError(t, err)
	assert.Empty(t, result)
	rooms.AssertExpectations(t)
}

func TestChangePermission_RejectsUnknownValue(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	service := NewRoomService(rooms, users)

	err := service.ChangePermission(context.Background(), &dto.ChangePermissionRequest{
		RoomID:     7,
		Permission: "owner",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	rooms.AssertNotCalled(t, "UpdatePermission")
}

func TestChangePermission_AcceptsAdminOnly(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	rooms.On("UpdatePermission", mock.Anything, int64(7), models.PermissionAdminOnly).Return(nil)

	service := NewRoomService(rooms, users)
	err := service.ChangePermission(context.Background(), &dto.ChangePermissionRequest{
		RoomID:     7,
		Permission: "adminOnly",
	})

	assert.NoError(t, err)
	rooms.AssertExpectations(t)
}

func TestChangeGroupName_RequiresName(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	service := NewRoomService(rooms, users)

	err := service.ChangeGroupName(context.Background(), &dto.ChangeGroupNameRequest{
		RoomID:          7,
		UpdatedRoomName: "   ",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	rooms.AssertNotCalled(t, "UpdateName")
}

func TestGetRoomsForUser_UnknownUser(t *testing.T) {
	rooms := new(mockRoomStore)
	users := new(mockUserStore)
	users.On("GetIDByExternalID", mock.Anything, "ghost").Return(int64(0), apperrors.ErrUserNotFound)

	service := NewRoomService(rooms, users)
	_, err := service.GetRoomsForUser(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	rooms.AssertNotCalled(t, "GetByMember")
}
