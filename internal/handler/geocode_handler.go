package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/boplan/boplan-backend/internal/client"
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/service"
)

// GeocodeHandler handles address lookup HTTP requests
type GeocodeHandler struct {
	geocodeService *service.GeocodeService
}

// NewGeocodeHandler creates a new GeocodeHandler
func NewGeocodeHandler(geocodeService *service.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocodeService: geocodeService}
}

// Geocode godoc
// @Summary Geocode an address
// @Description Forward-geocode a free-text Swedish address to coordinates
// @Tags geocode
// @Produce json
// @Security BearerAuth
// @Param q query string true "Address query"
// @Success 200 {array} client.GeocodeResult
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /geocode [get]
func (h *GeocodeHandler) Geocode(c echo.Context) error {
	query := c.QueryParam("q")

	results, err := h.geocodeService.Search(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Query is required", []ValidationError{
				{Field: "q", Message: "Must not be empty"},
			})
		}
		if errors.Is(err, client.ErrNoResults) {
			return NewNotFoundError(c, "No matches for this address")
		}
		log.Error().Err(err).Msg("Geocoding failed")
		return NewUpstreamError(c, "Geocoding API unavailable")
	}

	return c.JSON(http.StatusOK, results)
}
