package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/app/services"
	"github.com/campusconn/backend/internal/middleware"
)

// RoomController handles group-chat room endpoints
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// CreateRoom handles creating a new room
// @Summary Create a room
// @Description Creates a room; the creator automatically becomes a member
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create room request"
// @Success 201 {object} dto.APIResponse{data=models.Room} "Room created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Creator not found"
// @Failure 409 {object} dto.ErrorResponse "Room name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	room, err := c.roomService.CreateRoom(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(room))
}

// GetRoomByID handles retrieving one room with its members
// @Summary Get a room by ID
// @Description Retrieves a room and its member list
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /room/{roomId} [get]
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	roomID, err := strconv.ParseInt(ctx.Param("roomId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID").WithDetails("Room ID must be a valid number")))
		return
	}

	room, err := c.roomService.GetRoomByID(ctx, roomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room))
}

// GetRoomsForUser handles listing the rooms a user has joined
// @Summary Get a user's rooms
// @Description Retrieves the rooms the user is a member of, most recently joined first
// @Tags rooms
// @Accept json
// @Produce json
// @Param userId path string true "External auth id"
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{userId} [get]
func (c *RoomController) GetRoomsForUser(ctx *gin.Context) {
	rooms, err := c.roomService.GetRoomsForUser(ctx, ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rooms))
}

// GetJoinedRooms handles listing joined rooms via query parameter
// @Summary Get joined rooms
// @Description Retrieves the rooms the user is a member of
// @Tags rooms
// @Accept json
// @Produce json
// @Param userId query string true "External auth id"
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing userId"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /getJoinedRooms [get]
func (c *RoomController) GetJoinedRooms(ctx *gin.Context) {
	externalID := ctx.Query("userId")
	if externalID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "userId query parameter is required").WithField("userId")))
		return
	}

	rooms, err := c.roomService.GetRoomsForUser(ctx, externalID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rooms))
}

// GetAllRooms handles listing every room
// @Summary Get all rooms
// @Description Retrieves every room, newest first
// @Tags rooms
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /getAllRooms [get]
func (c *RoomController) GetAllRooms(ctx *gin.Context) {
	rooms, err := c.roomService.GetAllRooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rooms))
}

// SearchRooms handles room search by name
// @Summary Search rooms
// @Description Finds rooms whose name contains the query, case-insensitive. No matches yields an empty list.
// @Tags rooms
// @Accept json
// @Produce json
// @Param query path string true "Search query"
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /search/{query} [get]
func (c *RoomController) SearchRooms(ctx *gin.Context) {
	rooms, err := c.roomService.SearchRooms(ctx, ctx.Param("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rooms))
}

// JoinRoom handles adding a user to a room
// @Summary Join a room
// @Description Adds the user to the room's member set
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.JoinRoomRequest true "Join room request"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Joined room successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "User or room not found"
// @Failure 409 {object} dto.ErrorResponse "User is already a member"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /joinRoom [post]
func (c *RoomController) JoinRoom(ctx *gin.Context) {
	var req dto.JoinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.roomService.JoinRoom(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Joined room successfully"}))
}

// ChangeGroupName handles renaming a room
// @Summary Rename a room
// @Description Changes a room's display name
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.ChangeGroupNameRequest true "Change name request"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Room renamed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room name already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /changeGroupName [post]
func (c *RoomController) ChangeGroupName(ctx *gin.Context) {
	var req dto.ChangeGroupNameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.roomService.ChangeGroupName(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Room renamed successfully"}))
}

// ChangeImageLink handles replacing a room's image
// @Summary Change a room's image
// @Description Replaces the room's image link
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.ChangeImageLinkRequest true "Change image request"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Room image updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /changeImageLink [post]
func (c *RoomController) ChangeImageLink(ctx *gin.Context) {
	var req dto.ChangeImageLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.roomService.ChangeImageLink(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Room image updated successfully"}))
}

// ChangePermission handles updating who may edit room settings
// @Summary Change room permission
// @Description Sets the room's settings permission to everyone or adminOnly
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.ChangePermissionRequest true "Change permission request"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Room permission updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid permission value"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /changePermission [post]
func (c *RoomController) ChangePermission(ctx *gin.Context) {
	var req dto.ChangePermissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.roomService.ChangePermission(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Room permission updated successfully"}))
}
