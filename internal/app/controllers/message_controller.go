package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/app/services"
	"github.com/campusconn/backend/internal/middleware"
	"github.com/campusconn/backend/internal/pkg/filestorage"
	"github.com/campusconn/backend/internal/pkg/logger"
)

// MessageController handles the room message endpoints
type MessageController struct {
	messageService *services.MessageService
	fileStorage    filestorage.FileStorage
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService, fileStorage filestorage.FileStorage) *MessageController {
	return &MessageController{
		messageService: messageService,
		fileStorage:    fileStorage,
	}
}

// SendMessage handles appending a message to a room
// @Summary Send a message
// @Description Appends a message to a room. Text messages carry a body; media messages carry an asset URL or attach the asset as the "file" part.
// @Tags messages
// @Accept multipart/form-data
// @Produce json
// @Param senderId formData string true "Sender external auth id"
// @Param roomId formData int true "Room ID"
// @Param messageType formData string true "Content type: text, image, video or doc"
// @Param message formData string false "Text body"
// @Param imageUrl formData string false "Pre-uploaded asset URL"
// @Param file formData file false "Asset to store server-side"
// @Success 201 {object} dto.APIResponse{data=models.Message} "Message sent successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid content type or empty content"
// @Failure 403 {object} dto.ErrorResponse "Sender is not a room member"
// @Failure 404 {object} dto.ErrorResponse "Sender or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sendMessage [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	var form dto.SendMessageForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	var storedAssetURL string
	file, err := ctx.FormFile("file")
	if err != nil && err != http.ErrMissingFile {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file attachment").WithDetails(err.Error())))
		return
	}
	if file != nil {
		storedAssetURL, err = c.fileStorage.SaveFile(file)
		if err != nil {
			logger.Error().Err(err).Str("filename", file.Filename).Msg("Failed to store message asset")
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to store attached file")))
			return
		}
	}

	message, err := c.messageService.SendMessage(ctx, &form, storedAssetURL)
	if err != nil {
		// A stored file without a message row would leak.
		if storedAssetURL != "" {
			if delErr := c.fileStorage.DeleteFile(storedAssetURL); delErr != nil {
				logger.Warn().Err(delErr).Str("url", storedAssetURL).Msg("Failed to remove orphaned asset")
			}
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// GetMessages handles listing a room's message history
// @Summary Get room messages
// @Description Retrieves the full message history of a room, oldest first
// @Tags messages
// @Accept json
// @Produce json
// @Param userId path string true "Requesting user's external auth id"
// @Param roomId path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message} "Messages retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 404 {object} dto.ErrorResponse "User or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{userId}/{roomId} [get]
func (c *MessageController) GetMessages(ctx *gin.Context) {
	roomID, err := strconv.ParseInt(ctx.Param("roomId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID").WithDetails("Room ID must be a valid number")))
		return
	}

	messages, err := c.messageService.GetMessages(ctx, ctx.Param("userId"), roomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}
