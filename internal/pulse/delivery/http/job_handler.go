package http

import (
	"errors"
	"net/http"

	"golang-overlord-pulse/internal/pulse/config"
	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/internal/pulse/service"
	"golang-overlord-pulse/pkg/common"
	"golang-overlord-pulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// JobHandler handles the authenticated trigger and admin endpoints.
type JobHandler struct {
	jobService   service.PulseJobService
	queryService service.PulseQueryService
	cfg          *config.Config
	logger       *logger.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService service.PulseJobService, queryService service.PulseQueryService, cfg *config.Config, logger *logger.Logger) *JobHandler {
	return &JobHandler{jobService: jobService, queryService: queryService, cfg: cfg, logger: logger}
}

// RegisterRoutes registers the scheduler trigger route to the Echo group.
func (h *JobHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/pulse/run", h.RunPulse)
}

// RegisterAdminRoutes registers the admin routes to the Echo group.
func (h *JobHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/pulse/refresh", h.RefreshPulse)
	g.GET("/pulse/status", h.GetPulseStatus)
}

// RunPulse godoc
// @Summary Trigger a pulse ingestion run
// @Description Run the daily pulse job; invoked by an external scheduler with a bearer secret
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.PulseRunResult
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/pulse/run [get]
func (h *JobHandler) RunPulse(c echo.Context) error {
	if secret := h.cfg.Pulse.CronSecret; secret != "" {
		if c.Request().Header.Get(echo.HeaderAuthorization) != "Bearer "+secret {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}
	}
	return h.runPulse(c)
}

// RefreshPulse godoc
// @Summary Trigger a pulse ingestion run (admin)
// @Description Run the daily pulse job on demand
// @Tags admin
// @Produce json
// @Success 200 {object} dto.PulseRunResult
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/pulse/refresh [post]
func (h *JobHandler) RefreshPulse(c echo.Context) error {
	if !h.verifyAdmin(c) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}
	return h.runPulse(c)
}

// GetPulseStatus godoc
// @Summary Get operational pulse status (admin)
// @Description Get the cache summary plus recent job log entries
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminStatusResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/pulse/status [get]
func (h *JobHandler) GetPulseStatus(c echo.Context) error {
	if !h.verifyAdmin(c) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	status, err := h.queryService.GetAdminStatus(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get admin pulse status", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch admin data"})
	}
	return c.JSON(http.StatusOK, status)
}

func (h *JobHandler) runPulse(c echo.Context) error {
	result, err := h.jobService.RunExclusive(c.Request().Context())
	if errors.Is(err, dto.ErrRunInProgress) {
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	if err != nil {
		h.logger.Error("Pulse run failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status": common.RunStatusError,
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, result)
}

func (h *JobHandler) verifyAdmin(c echo.Context) bool {
	secret := h.cfg.Pulse.AdminSecret
	if secret == "" {
		return true
	}
	return c.Request().Header.Get("X-Admin-Secret") == secret
}
