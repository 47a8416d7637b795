package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/internal/pulse/service"
	"golang-overlord-pulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PulseHandler handles the public, read-only pulse endpoints. These never
// trigger ingestion and never surface ingestion errors.
type PulseHandler struct {
	queryService service.PulseQueryService
	logger       *logger.Logger
}

// NewPulseHandler creates a new PulseHandler.
func NewPulseHandler(queryService service.PulseQueryService, logger *logger.Logger) *PulseHandler {
	return &PulseHandler{queryService: queryService, logger: logger}
}

// RegisterRoutes registers the pulse routes to the Echo group.
func (h *PulseHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetOverview)
	g.GET("/history", h.GetHistory)
	g.GET("/:overlord", h.GetOverlordDetail)
}

// GetOverview godoc
// @Summary Get the pulse overview
// @Description Get all overlords' rolling aggregates plus the derived superlative keys
// @Tags pulse
// @Produce json
// @Success 200 {object} dto.PulseOverviewResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pulse [get]
func (h *PulseHandler) GetOverview(c echo.Context) error {
	overview, err := h.queryService.GetOverview(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get pulse overview", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch pulse data"})
	}
	return c.JSON(http.StatusOK, overview)
}

// GetHistory godoc
// @Summary Get the comparative daily history
// @Description Get every overlord's daily article counts for the trailing N days
// @Tags pulse
// @Produce json
// @Param days query int false "Trailing window in days (default 90, clamped to 1-365)"
// @Success 200 {object} dto.PulseHistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pulse/history [get]
func (h *PulseHandler) GetHistory(c echo.Context) error {
	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil {
		days = 0 // fall back to the service default
	}

	history, err := h.queryService.GetHistory(c.Request().Context(), days)
	if err != nil {
		h.logger.Error("Failed to get pulse history", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch pulse history"})
	}
	return c.JSON(http.StatusOK, history)
}

// GetOverlordDetail godoc
// @Summary Get one overlord's detail
// @Description Get an overlord's current aggregates, top headlines, and 90-day history
// @Tags pulse
// @Produce json
// @Param overlord path string true "Overlord key"
// @Success 200 {object} dto.OverlordDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pulse/{overlord} [get]
func (h *PulseHandler) GetOverlordDetail(c echo.Context) error {
	key := c.Param("overlord")

	detail, err := h.queryService.GetOverlordDetail(c.Request().Context(), key)
	if errors.Is(err, dto.ErrOverlordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Unknown overlord: " + key})
	}
	if err != nil {
		h.logger.Error("Failed to get overlord detail", logger.StringField("overlord", key), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch overlord data"})
	}
	return c.JSON(http.StatusOK, detail)
}
