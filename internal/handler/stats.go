package handler

import (
	"errors"
	"net/http"
	"strconv"

	"remora/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	minStatsDays = 1
	maxStatsDays = 30
)

// StatsHandler handles visit statistics queries
type StatsHandler struct {
	service service.ShortenerServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service service.ShortenerServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

// Stats handles GET /api/v1/stats/:shortCode
// @Summary Get statistics for a short URL
// @Description Returns total visit counts, optionally with a daily breakdown over the last N days
// @Tags stats
// @Produce json
// @Param shortCode path string true "Short code"
// @Param days query int false "Daily breakdown window (1-30)"
// @Success 200 {object} model.StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/stats/{shortCode} [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	shortCode := c.Param("shortCode")

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minStatsDays || parsed > maxStatsDays {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "days must be an integer between 1 and 30",
			})
			return
		}
		days = parsed
	}

	stats, err := h.service.Stats(c.Request.Context(), shortCode, days)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Short URL not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load statistics",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
