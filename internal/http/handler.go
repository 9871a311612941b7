package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/NABEEL165/suchigo-project/internal/service"
)

type Handler struct {
	profiles    *service.ProfileService
	schedule    *service.ScheduleService
	localities  *service.LocalityService
	collections *service.CollectionService
	reports     *service.ReportService
	log         zerolog.Logger
}

func NewHandler(
	profiles *service.ProfileService,
	schedule *service.ScheduleService,
	localities *service.LocalityService,
	collections *service.CollectionService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		profiles:    profiles,
		schedule:    schedule,
		localities:  localities,
		collections: collections,
		reports:     reports,
		log:         log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": service.ErrPermissionDenied.Error()})
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidPickupDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
