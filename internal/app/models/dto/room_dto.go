package dto

// CreateRoomRequest is the body of POST /rooms. roomCreator carries the
// creator's external auth id.
type CreateRoomRequest struct {
	RoomName        string  `json:"roomName" binding:"required" example:"placement-prep"`
	RoomCreator     string  `json:"roomCreator" binding:"required" example:"user_2aB3cD4eF"`
	RoomDescription *string `json:"roomDescription,omitempty"`
	ImageLink       *string `json:"imageLink,omitempty"`
}

// JoinRoomRequest is the body of POST /joinRoom.
type JoinRoomRequest struct {
	UserID string `json:"userId" binding:"required" example:"user_2aB3cD4eF"`
	RoomID int64  `json:"roomId" binding:"required" example:"7"`
}

// ChangeGroupNameRequest is the body of POST /changeGroupName.
type ChangeGroupNameRequest struct {
	RoomID          int64  `json:"roomId" binding:"required" example:"7"`
	UpdatedRoomName string `json:"updatedroomName" binding:"required" example:"placement-prep-2026"`
}

// ChangeImageLinkRequest is the body of POST /changeImageLink.
type ChangeImageLinkRequest struct {
	RoomID    int64  `json:"roomId" binding:"required" example:"7"`
	ImageLink string `json:"imageLink" binding:"required"`
}

// ChangePermissionRequest is the body of POST /changePermission.
type ChangePermissionRequest struct {
	RoomID     int64  `json:"roomId" binding:"required" example:"7"`
	Permission string `json:"permission" binding:"required" example:"adminOnly"`
}
