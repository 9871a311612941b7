package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NABEEL165/suchigo-project/internal/geo"
	"github.com/NABEEL165/suchigo-project/internal/http/middleware"
	"github.com/NABEEL165/suchigo-project/internal/model"
	"github.com/NABEEL165/suchigo-project/internal/service"
)

type profileRequest struct {
	FullName        string  `json:"full_name" binding:"required"`
	SecondaryNumber string  `json:"secondary_number"`
	PickupAddress   string  `json:"pickup_address" binding:"required"`
	Landmark        string  `json:"landmark"`
	Latitude        string  `json:"latitude"`
	Longitude       string  `json:"longitude"`
	StateID         string  `json:"state_id" binding:"required"`
	DistrictID      string  `json:"district_id" binding:"required"`
	LocalbodyID     string  `json:"localbody_id" binding:"required"`
	Ward            string  `json:"ward" binding:"required"`
	NumberOfBags    int     `json:"number_of_bags" binding:"required"`
	WasteType       string  `json:"waste_type" binding:"required"`
	Comments        string  `json:"comments"`
	Pincode         string  `json:"pincode"`
	SelectedDateID  *string `json:"selected_date_id"`
}

func (r profileRequest) toInput() (service.ProfileInput, error) {
	stateID, err := uuid.Parse(strings.TrimSpace(r.StateID))
	if err != nil {
		return service.ProfileInput{}, err
	}
	districtID, err := uuid.Parse(strings.TrimSpace(r.DistrictID))
	if err != nil {
		return service.ProfileInput{}, err
	}
	localbodyID, err := uuid.Parse(strings.TrimSpace(r.LocalbodyID))
	if err != nil {
		return service.ProfileInput{}, err
	}

	input := service.ProfileInput{
		FullName:        r.FullName,
		SecondaryNumber: r.SecondaryNumber,
		PickupAddress:   r.PickupAddress,
		Landmark:        r.Landmark,
		LatitudeRaw:     r.Latitude,
		LongitudeRaw:    r.Longitude,
		StateID:         stateID,
		DistrictID:      districtID,
		LocalbodyID:     localbodyID,
		Ward:            r.Ward,
		NumberOfBags:    r.NumberOfBags,
		WasteType:       r.WasteType,
		Comments:        r.Comments,
		Pincode:         r.Pincode,
	}
	if r.SelectedDateID != nil && strings.TrimSpace(*r.SelectedDateID) != "" {
		selectedID, err := uuid.Parse(strings.TrimSpace(*r.SelectedDateID))
		if err != nil {
			return service.ProfileInput{}, err
		}
		input.SelectedDateID = &selectedID
	}
	return input, nil
}

type profileResponse struct {
	ID                  uuid.UUID  `json:"id"`
	FullName            string     `json:"full_name"`
	SecondaryNumber     string     `json:"secondary_number"`
	PickupAddress       string     `json:"pickup_address"`
	Landmark            string     `json:"landmark"`
	Latitude            *float64   `json:"latitude"`
	Longitude           *float64   `json:"longitude"`
	StateID             uuid.UUID  `json:"state_id"`
	DistrictID          uuid.UUID  `json:"district_id"`
	LocalbodyID         uuid.UUID  `json:"localbody_id"`
	Ward                string     `json:"ward"`
	NumberOfBags        int        `json:"number_of_bags"`
	WasteType           string     `json:"waste_type"`
	Comments            string     `json:"comments"`
	Pincode             string     `json:"pincode"`
	Status              string     `json:"status"`
	AssignedCollectorID *uuid.UUID `json:"assigned_collector_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toProfileResponse(p model.WasteProfile) profileResponse {
	return profileResponse{
		ID:                  p.ID,
		FullName:            p.FullName,
		SecondaryNumber:     p.SecondaryNumber,
		PickupAddress:       p.PickupAddress,
		Landmark:            p.Landmark,
		Latitude:            p.Latitude,
		Longitude:           p.Longitude,
		StateID:             p.StateID,
		DistrictID:          p.DistrictID,
		LocalbodyID:         p.LocalbodyID,
		Ward:                p.Ward,
		NumberOfBags:        p.NumberOfBags,
		WasteType:           p.WasteType,
		Comments:            p.Comments,
		Pincode:             p.Pincode,
		Status:              string(p.Status),
		AssignedCollectorID: p.AssignedCollectorID,
		CreatedAt:           p.CreatedAt,
	}
}

func toProfileResponses(profiles []model.WasteProfile) []profileResponse {
	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toProfileResponse(p))
	}
	return out
}

type locationHistoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	ChangedBy uuid.UUID `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func toHistoryResponses(history []model.LocationHistory) []locationHistoryResponse {
	out := make([]locationHistoryResponse, 0, len(history))
	for _, entry := range history {
		out = append(out, locationHistoryResponse{
			ID:        entry.ID,
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
			ChangedBy: entry.ChangedBy,
			ChangedAt: entry.ChangedAt,
		})
	}
	return out
}

func (h *Handler) createProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference id"})
		return
	}

	result, err := h.profiles.Create(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := gin.H{"profile": toProfileResponse(*result.Profile)}
	if result.ScheduleWarning != "" {
		response["schedule_warning"] = result.ScheduleWarning
	}
	c.JSON(http.StatusCreated, response)
}

func (h *Handler) updateProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference id"})
		return
	}

	result, err := h.profiles.Update(c.Request.Context(), principal, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := gin.H{"profile": toProfileResponse(*result.Profile)}
	if result.ScheduleWarning != "" {
		response["schedule_warning"] = result.ScheduleWarning
	}
	c.JSON(http.StatusOK, response)
}

func (h *Handler) getProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.profiles.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":          toProfileResponse(*detail.Profile),
		"location_history": toHistoryResponses(detail.RecentLocations),
	})
}

func (h *Handler) listProfiles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	profiles, err := h.profiles.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponses(profiles))
}

func (h *Handler) deleteProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.profiles.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) profileLocationHistory(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	history, err := h.profiles.LocationHistory(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHistoryResponses(history))
}

func (h *Handler) exportLocations(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	profiles, err := h.profiles.ExportLocations(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	type exportRow struct {
		ID            uuid.UUID `json:"id"`
		FullName      string    `json:"full_name"`
		PickupAddress string    `json:"pickup_address"`
		Latitude      float64   `json:"latitude"`
		Longitude     float64   `json:"longitude"`
		WasteType     string    `json:"waste_type"`
		Status        string    `json:"status"`
		CreatedAt     time.Time `json:"created_at"`
	}
	rows := make([]exportRow, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, exportRow{
			ID:            p.ID,
			FullName:      p.FullName,
			PickupAddress: p.PickupAddress,
			Latitude:      *p.Latitude,
			Longitude:     *p.Longitude,
			WasteType:     p.WasteType,
			Status:        string(p.Status),
			CreatedAt:     p.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, rows)
}

// validateLocation exposes the shared coordinate rule for the map UI.
func (h *Handler) validateLocation(c *gin.Context) {
	coords, ok := geo.ValidateCoordinates(c.Query("lat"), c.Query("lng"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid":   false,
			"message": "Invalid coordinates. Latitude must be between -90 and 90, Longitude between -180 and 180.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":     true,
		"latitude":  coords.Latitude,
		"longitude": coords.Longitude,
		"message":   "Coordinates are valid",
	})
}

type assignCollectorRequest struct {
	CollectorID string `json:"collector_id" binding:"required"`
}

func (h *Handler) assignCollector(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req assignCollectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collectorID, err := uuid.Parse(strings.TrimSpace(req.CollectorID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collector_id"})
		return
	}

	if err := h.profiles.AssignCollector(c.Request.Context(), principal, id, collectorID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
