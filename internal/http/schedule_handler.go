package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NABEEL165/suchigo-project/internal/http/middleware"
)

func (h *Handler) availableDates(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	localbodyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dates, err := h.schedule.AvailableDates(c.Request.Context(), principal, localbodyID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dates)
}

type savePickupDateRequest struct {
	PickupDateID string `json:"pickup_date_id" binding:"required"`
}

func (h *Handler) savePickupDate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req savePickupDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	calendarID, err := uuid.Parse(strings.TrimSpace(req.PickupDateID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pickup_date_id"})
		return
	}

	created, err := h.schedule.SaveSelection(c.Request.Context(), principal, calendarID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "created": created})
}

func (h *Handler) currentPickupDate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	selection, err := h.schedule.CurrentSelection(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":               selection.ID,
		"calendar_id":      selection.CalendarID,
		"waste_profile_id": selection.WasteProfileID,
		"created_at":       selection.CreatedAt,
	})
}

func (h *Handler) listStates(c *gin.Context) {
	states, err := h.localities.States(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	type stateRow struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}
	rows := make([]stateRow, 0, len(states))
	for _, state := range states {
		rows = append(rows, stateRow{ID: state.ID, Name: state.Name})
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) listDistricts(c *gin.Context) {
	stateID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	districts, err := h.localities.Districts(c.Request.Context(), stateID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	type districtRow struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}
	rows := make([]districtRow, 0, len(districts))
	for _, district := range districts {
		rows = append(rows, districtRow{ID: district.ID, Name: district.Name})
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) listLocalBodies(c *gin.Context) {
	districtID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	localbodies, err := h.localities.LocalBodies(c.Request.Context(), districtID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	type localBodyRow struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
		Type string    `json:"type"`
	}
	rows := make([]localBodyRow, 0, len(localbodies))
	for _, lb := range localbodies {
		rows = append(rows, localBodyRow{ID: lb.ID, Name: lb.Name, Type: lb.BodyType})
	}
	c.JSON(http.StatusOK, rows)
}
