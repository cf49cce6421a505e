package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/devhubio/profile-service/internal/application/usecase/experience"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type ExperienceHandler struct {
	addExperienceUC    *experienceUC.AddExperienceUseCase
	updateExperienceUC *experienceUC.UpdateExperienceUseCase
	deleteExperienceUC *experienceUC.DeleteExperienceUseCase
	logger             logger.Logger
}

func NewExperienceHandler(
	addUC *experienceUC.AddExperienceUseCase,
	updateUC *experienceUC.UpdateExperienceUseCase,
	deleteUC *experienceUC.DeleteExperienceUseCase,
	log logger.Logger,
) *ExperienceHandler {
	return &ExperienceHandler{
		addExperienceUC:    addUC,
		updateExperienceUC: updateUC,
		deleteExperienceUC: deleteUC,
		logger:             log,
	}
}

func (h *ExperienceHandler) AddExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}

	input := experienceUC.AddExperienceInput{
		UserID:         userID,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		IsOngoing:      req.IsOngoing,
		JobType:        req.JobType,
	}
	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			c.Error(apperror.NewInvalidInput("Invalid start date", err))
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			c.Error(apperror.NewInvalidInput("Invalid end date", err))
			return
		}
		input.EndDate = &endDate
	}

	output, err := h.addExperienceUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "Experience Created", ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	experienceID, err := uuid.Parse(c.Param("experienceId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("Experience ID is required", err))
		return
	}

	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience update", err))
		return
	}

	input := experienceUC.UpdateExperienceInput{
		UserID:         userID,
		ExperienceID:   experienceID,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		IsOngoing:      req.IsOngoing,
		JobType:        req.JobType,
	}
	if req.StartDate != nil && *req.StartDate != "" {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			c.Error(apperror.NewInvalidInput("Invalid start date", err))
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			c.Error(apperror.NewInvalidInput("Invalid end date", err))
			return
		}
		input.EndDate = &endDate
	}

	output, err := h.updateExperienceUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "Experience updated", ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	experienceID, err := uuid.Parse(c.Param("experienceId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("Experience ID is required", err))
		return
	}

	input := experienceUC.DeleteExperienceInput{UserID: userID, ExperienceID: experienceID}
	if err := h.deleteExperienceUC.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "Experience deleted successfully", nil)
}
