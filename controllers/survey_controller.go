package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eco4-survey-crm/dto"
	"github.com/eco4-survey-crm/services"
)

// SurveyController handles HTTP requests for surveys
type SurveyController struct {
	surveyService *services.SurveyService
}

// NewSurveyController creates a new survey controller instance
func NewSurveyController(surveyService *services.SurveyService) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

// GetSurveys handles GET /api/surveys
func (c *SurveyController) GetSurveys(ctx *gin.Context) {
	surveys, err := c.surveyService.ListSurveys()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch surveys"})
		return
	}

	ctx.JSON(http.StatusOK, surveys)
}

// GetSurvey handles GET /api/surveys/:id
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	id := ctx.Param("id")

	result, err := c.surveyService.GetSurvey(id)
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Survey not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch survey"})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// CreateSurvey handles POST /api/surveys
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.CreateSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	id, err := c.surveyService.CreateSurvey(req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create survey"})
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{
		ID:      id,
		Message: "Survey created successfully",
	})
}

// UpdateSurvey handles PUT /api/surveys/:id
func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UpdateSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	if err := c.surveyService.UpdateSurvey(id, req); err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Survey not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update survey"})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Survey updated successfully"})
}

// DeleteSurvey handles DELETE /api/surveys/:id
func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.surveyService.DeleteSurvey(id); err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Survey not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete survey"})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Survey deleted successfully"})
}

// AddSurveyDetail handles POST /api/surveys/:id/details
func (c *SurveyController) AddSurveyDetail(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.AddSurveyDetailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	detailID, err := c.surveyService.AddSurveyDetail(id, req)
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Survey not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add survey detail"})
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{
		ID:      detailID,
		Message: "Survey detail added successfully",
	})
}
