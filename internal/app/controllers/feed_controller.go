package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/app/services"
	"github.com/campusconn/backend/internal/middleware"
)

// FeedController handles the home feed and news endpoints
type FeedController struct {
	feedService *services.FeedService
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// CreatePost handles sharing a post to the feed
// @Summary Create a post
// @Description Shares an image post from a room to the home feed
// @Tags feed
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Create post request"
// @Success 201 {object} dto.APIResponse{data=models.Post} "Post created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "User or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /createPost [post]
func (c *FeedController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	post, err := c.feedService.CreatePost(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// GetPosts handles listing the feed
// @Summary Get all posts
// @Description Retrieves all posts, newest first
// @Tags feed
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Post} "Posts retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /posts [get]
func (c *FeedController) GetPosts(ctx *gin.Context) {
	posts, err := c.feedService.GetPosts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(posts))
}

// CreateNews handles publishing a news item
// @Summary Create a news item
// @Description Publishes a news item visible between its start and end dates
// @Tags feed
// @Accept json
// @Produce json
// @Param request body dto.CreateNewsRequest true "Create news request"
// @Success 201 {object} dto.APIResponse{data=models.News} "News created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news [post]
func (c *FeedController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	news, err := c.feedService.CreateNews(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(news))
}

// GetActiveNews handles listing the currently visible news items
// @Summary Get active news
// @Description Retrieves the news items whose visibility window covers the current time
// @Tags feed
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ActiveNewsResponse} "Active news retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /news/active [get]
func (c *FeedController) GetActiveNews(ctx *gin.Context) {
	news, err := c.feedService.GetActiveNews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ActiveNewsResponse{News: news}))
}
