package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/middleware"
	"github.com/boplan/boplan-backend/internal/service"
)

// ExportHandler handles profile export HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportProfile godoc
// @Summary Export a profile as CSV
// @Description Calculates the profile's budget projection, stores it as CSV, and returns a presigned download URL
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} service.ExportResult
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /profiles/{id}/export [post]
func (h *ExportHandler) ExportProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid profile ID", nil)
	}

	result, err := h.exportService.ExportCSV(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Profile not found")
		}
		if errors.Is(err, domain.ErrInsufficientData) {
			return NewUnprocessableError(c, "Profile has no loans to project")
		}
		log.Error().Err(err).Str("profile_id", id.String()).Msg("Export failed")
		return NewInternalError(c, "Export failed")
	}

	return c.JSON(http.StatusOK, result)
}
