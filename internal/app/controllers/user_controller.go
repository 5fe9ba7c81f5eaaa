package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/app/services"
	"github.com/campusconn/backend/internal/middleware"
)

// UserController handles user registration, profile and connection
// endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register handles new user registration
// @Summary Register a new user
// @Description Creates a user record for an identity issued by the external auth provider
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register request"
// @Success 201 {object} dto.APIResponse{data=models.User} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 409 {object} dto.ErrorResponse "Email, username or roll number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	user, err := c.userService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// GetUser handles retrieving a user profile by external auth id
// @Summary Get a user by external auth id
// @Description Retrieves the full profile, dashboard and connection edges for a user
// @Tags users
// @Accept json
// @Produce json
// @Param userId query string true "External auth id"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing userId"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	externalID := ctx.Query("userId")
	if externalID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "userId query parameter is required").WithField("userId")))
		return
	}

	user, err := c.userService.GetByExternalID(ctx, externalID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// GetUserByID handles retrieving a user profile by internal id
// @Summary Get a user by id
// @Description Retrieves the full profile for a user by internal numeric id
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID").WithDetails("User ID must be a valid number")))
		return
	}

	user, err := c.userService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// UpdateInfo handles partial profile updates
// @Summary Update profile info
// @Description Updates department, regulation, roll number and interests; absent fields keep their stored values
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateInfoRequest true "Update info request"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Roll number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/update-info [put]
func (c *UserController) UpdateInfo(ctx *gin.Context) {
	var req dto.UpdateInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.userService.UpdateInfo(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "User info updated successfully"}))
}

// UpdateDashboard handles category-scoped dashboard updates
// @Summary Update the academic dashboard
// @Description Applies a merge to one dashboard category: gpa/attendance overwrite, grades merges per subject, list categories append the entry
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateDashboardRequest true "Update dashboard request"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Dashboard updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown category or malformed data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/updateUserDashboard [put]
func (c *UserController) UpdateDashboard(ctx *gin.Context) {
	var req dto.UpdateDashboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.userService.UpdateDashboard(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Dashboard updated successfully"}))
}

// Connect handles sending a connection request
// @Summary Send a connection request
// @Description Records a pending connection request; repeating a pending request is a no-op
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ConnectRequest true "Connect request"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Connection request sent"
// @Failure 400 {object} dto.ErrorResponse "Self connection or invalid request"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/connect [post]
func (c *UserController) Connect(ctx *gin.Context) {
	var req dto.ConnectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.userService.Connect(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Connection request sent"}))
}

// AcceptConnection handles accepting a pending connection request
// @Summary Accept a connection request
// @Description Consumes the pending request and connects both users symmetrically
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ConnectRequest true "Accept connection request"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Connection accepted"
// @Failure 404 {object} dto.ErrorResponse "User or pending request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/acceptConnection [post]
func (c *UserController) AcceptConnection(ctx *gin.Context) {
	var req dto.ConnectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.userService.AcceptConnection(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Connection accepted"}))
}
