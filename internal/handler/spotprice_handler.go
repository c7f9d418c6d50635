package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/boplan/boplan-backend/internal/client"
	"github.com/boplan/boplan-backend/internal/service"
)

// SpotPriceHandler handles electricity spot price HTTP requests
type SpotPriceHandler struct {
	spotPriceService *service.SpotPriceService
}

// NewSpotPriceHandler creates a new SpotPriceHandler
func NewSpotPriceHandler(spotPriceService *service.SpotPriceService) *SpotPriceHandler {
	return &SpotPriceHandler{spotPriceService: spotPriceService}
}

// SpotPriceResponse is the spot price summary for a zone
type SpotPriceResponse struct {
	Zone             string               `json:"zone"`
	Date             string               `json:"date"`
	AverageOrePerKWh float64              `json:"averageOrePerKwh"`
	Hours            []client.HourlyPrice `json:"hours"`
}

// GetSpotPrice godoc
// @Summary Electricity spot price
// @Description Today's hourly spot prices and daily average for a Swedish bidding zone
// @Tags spot-price
// @Produce json
// @Security BearerAuth
// @Param zone query string true "Bidding zone (SE1-SE4)"
// @Success 200 {object} SpotPriceResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /spot-price [get]
func (h *SpotPriceHandler) GetSpotPrice(c echo.Context) error {
	zone := c.QueryParam("zone")
	if !client.ValidZone(zone) {
		return NewValidationError(c, "Invalid zone", []ValidationError{
			{Field: "zone", Message: "Must be one of SE1, SE2, SE3, SE4"},
		})
	}

	prices, err := h.spotPriceService.GetTodayPrices(c.Request().Context(), zone)
	if err != nil {
		if errors.Is(err, client.ErrZoneNotFound) {
			return NewNotFoundError(c, "No prices published for this zone today")
		}
		log.Error().Err(err).Str("zone", zone).Msg("Failed to fetch spot prices")
		return NewUpstreamError(c, "Spot price API unavailable")
	}

	var sum float64
	for _, p := range prices {
		sum += p.SEKPerKWh
	}
	var avgOre float64
	if len(prices) > 0 {
		// SEK/kWh to öre/kWh
		avgOre = sum / float64(len(prices)) * 100
	}

	return c.JSON(http.StatusOK, SpotPriceResponse{
		Zone:             zone,
		Date:             time.Now().Format("2006-01-02"),
		AverageOrePerKWh: avgOre,
		Hours:            prices,
	})
}
