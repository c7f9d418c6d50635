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

// ProfileHandler handles budget profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest is the create/update profile request body
type ProfileRequest struct {
	Name  string                  `json:"name"`
	Input domain.CalculationInput `json:"input"`
}

// CreateProfile godoc
// @Summary Create a budget profile
// @Description Save a named calculation input set for the authenticated user
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProfileRequest true "Profile name and calculation input"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, err := h.profileService.Create(userID, req.Name, req.Input)
	if err != nil {
		if validationErr := profileValidationError(c, err); validationErr != nil {
			return validationErr
		}
		log.Error().Err(err).Msg("Failed to create profile")
		return NewInternalError(c, "Failed to create profile")
	}

	return c.JSON(http.StatusCreated, profile)
}

// GetProfiles godoc
// @Summary List budget profiles
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Profile
// @Failure 401 {object} ProblemDetails
// @Router /profiles [get]
func (h *ProfileHandler) GetProfiles(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	profiles, err := h.profileService.GetAll(userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list profiles")
		return NewInternalError(c, "Failed to list profiles")
	}
	if profiles == nil {
		profiles = []*domain.Profile{}
	}

	return c.JSON(http.StatusOK, profiles)
}

// GetProfile godoc
// @Summary Get a budget profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid profile ID", nil)
	}

	profile, err := h.profileService.Get(userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Profile not found")
		}
		log.Error().Err(err).Msg("Failed to get profile")
		return NewInternalError(c, "Failed to get profile")
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update a budget profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body ProfileRequest true "Profile name and calculation input"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /profiles/{id} [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid profile ID", nil)
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	profile, err := h.profileService.Update(userID, id, req.Name, req.Input)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Profile not found")
		}
		if validationErr := profileValidationError(c, err); validationErr != nil {
			return validationErr
		}
		log.Error().Err(err).Msg("Failed to update profile")
		return NewInternalError(c, "Failed to update profile")
	}

	return c.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary Delete a budget profile
// @Tags profiles
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid profile ID", nil)
	}

	if err := h.profileService.Delete(userID, id); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return NewNotFoundError(c, "Profile not found")
		}
		log.Error().Err(err).Msg("Failed to delete profile")
		return NewInternalError(c, "Failed to delete profile")
	}

	return c.NoContent(http.StatusNoContent)
}

// profileValidationError maps domain validation errors to problem documents.
// Returns nil when err is not a validation error.
func profileValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 100 characters or less"},
		})
	case errors.Is(err, domain.ErrTooManyLoans):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "input.loans", Message: "At most 5 loans are supported"},
		})
	case errors.Is(err, domain.ErrLoanNameTooLong),
		errors.Is(err, domain.ErrLoanPrincipalInvalid),
		errors.Is(err, domain.ErrLoanRateInvalid),
		errors.Is(err, domain.ErrLoanAmortizationInvalid),
		errors.Is(err, domain.ErrLoanRateTypeInvalid):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "input.loans", Message: err.Error()},
		})
	}
	return nil
}
