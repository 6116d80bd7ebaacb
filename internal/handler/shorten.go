package handler

import (
	"errors"
	"net/http"

	"remora/internal/codegen"
	"remora/internal/model"
	"remora/internal/service"

	"github.com/gin-gonic/gin"
)

// ShortenHandler handles short URL creation
type ShortenHandler struct {
	service service.ShortenerServiceInterface
}

// NewShortenHandler creates a new ShortenHandler
func NewShortenHandler(service service.ShortenerServiceInterface) *ShortenHandler {
	return &ShortenHandler{service: service}
}

// Shorten handles POST /api/v1/shorten
// @Summary Create a short URL
// @Description Creates a short URL for the given original URL, with an optional custom code
// @Tags shorturl
// @Accept json
// @Produce json
// @Param request body model.ShortenRequest true "Shorten request"
// @Success 201 {object} model.ShortenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/shorten [post]
func (h *ShortenHandler) Shorten(c *gin.Context) {
	var req model.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	if req.CustomCode != "" {
		if err := codegen.ValidateCustomCode(req.CustomCode); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
			return
		}
	}

	resp, err := h.service.Shorten(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCodeConflict):
			c.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Short code already taken",
			})
		case errors.Is(err, service.ErrAllocationExhausted):
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Could not allocate a short code, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to create short URL",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
