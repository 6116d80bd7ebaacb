package handler

import (
	"errors"
	"net/http"
	"time"

	"remora/internal/mq"
	"remora/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedirectHandler handles short URL redirection
type RedirectHandler struct {
	shortenerService service.ShortenerServiceInterface
	mqProducer       mq.ProducerInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	shortenerService service.ShortenerServiceInterface,
	mqProducer mq.ProducerInterface,
) *RedirectHandler {
	return &RedirectHandler{
		shortenerService: shortenerService,
		mqProducer:       mqProducer,
	}
}

// Redirect handles GET /:shortCode. A GET is a real visit: it is
// tracked before the redirect is issued.
// @Summary Redirect to original URL
// @Description Redirects to the original URL for the given short code and records the visit
// @Tags shorturl
// @Param shortCode path string true "Short code"
// @Success 307
// @Failure 404
// @Router /{shortCode} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}

	su, err := h.shortenerService.ResolveAndTrack(c.Request.Context(), shortCode, clientIP)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{
				"code": shortCode,
			})
			return
		}
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to resolve short code")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resolve short URL",
		})
		return
	}

	// Publish the visit event for downstream consumers
	if h.mqProducer != nil {
		go func() {
			msg := &mq.VisitMessage{
				ShortCode: shortCode,
				ClientIP:  clientIP,
				VisitedAt: time.Now().UTC(),
			}
			if err := h.mqProducer.SendVisit(c.Request.Context(), msg); err != nil {
				log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to send visit event to MQ")
			}
		}()
	}

	c.Redirect(http.StatusTemporaryRedirect, su.OriginalURL)
}

// Probe handles HEAD /:shortCode. Clients probe with HEAD before the
// real fetch; counting those would double every tracked visit, so the
// probe path never touches the counters.
// @Summary Probe a short code
// @Description Redirects without recording a visit
// @Tags shorturl
// @Param shortCode path string true "Short code"
// @Success 307
// @Failure 404
// @Router /{shortCode} [head]
func (h *RedirectHandler) Probe(c *gin.Context) {
	shortCode := c.Param("shortCode")

	su, err := h.shortenerService.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to resolve short code")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, su.OriginalURL)
}
