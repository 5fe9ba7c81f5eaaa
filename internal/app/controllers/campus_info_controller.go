package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconn/backend/internal/app/models/dto"
	"github.com/campusconn/backend/internal/app/services"
	"github.com/campusconn/backend/internal/middleware"
)

// CampusInfoController handles the campus reference-data endpoints
type CampusInfoController struct {
	campusInfoService *services.CampusInfoService
}

// NewCampusInfoController creates a new CampusInfoController
func NewCampusInfoController(campusInfoService *services.CampusInfoService) *CampusInfoController {
	return &CampusInfoController{campusInfoService: campusInfoService}
}

// GetCampusInfo handles resolving resource URLs for a regulation and department
// @Summary Get campus info
// @Description Resolves the academic calendar and syllabus URLs for one regulation and department pair
// @Tags campus-info
// @Accept json
// @Produce json
// @Param regulation query string true "Regulation code" example(VR20)
// @Param department query string true "Department code" example(IT)
// @Success 200 {object} dto.APIResponse{data=dto.CampusInfoResponse} "Campus info retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing regulation or department"
// @Failure 404 {object} dto.ErrorResponse "No campus info for the pair"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campus-info [get]
func (c *CampusInfoController) GetCampusInfo(ctx *gin.Context) {
	info, err := c.campusInfoService.Resolve(ctx, ctx.Query("regulation"), ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CampusInfoResponse{
		AcademicCalendarURL: info.AcademicCalendarURL,
		SyllabusURL:         info.SyllabusURL,
	}))
}

// UpsertCampusInfo handles creating or replacing a reference row
// @Summary Upsert campus info
// @Description Creates or replaces the resource URLs for a regulation and department pair
// @Tags campus-info
// @Accept json
// @Produce json
// @Param request body dto.UpsertCampusInfoRequest true "Upsert campus info request"
// @Success 200 {object} dto.APIResponse{data=models.CampusInfo} "Campus info saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /campus-info [put]
func (c *CampusInfoController) UpsertCampusInfo(ctx *gin.Context) {
	var req dto.UpsertCampusInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	info, err := c.campusInfoService.Upsert(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
