package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NABEEL165/suchigo-project/internal/http/middleware"
	"github.com/NABEEL165/suchigo-project/internal/model"
	"github.com/NABEEL165/suchigo-project/internal/service"
)

type collectionRequest struct {
	CustomerID  string  `json:"customer_id" binding:"required"`
	LocalbodyID string  `json:"localbody_id"`
	Localbody   string  `json:"localbody" binding:"required"`
	Ward        string  `json:"ward" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	BuildingNo  string  `json:"building_no"`
	StreetName  string  `json:"street_name"`
	KG          float64 `json:"kg" binding:"required"`
	PhotoData   string  `json:"photo_data"`
}

func (r collectionRequest) toInput() (service.CollectionInput, error) {
	customerID, err := uuid.Parse(strings.TrimSpace(r.CustomerID))
	if err != nil {
		return service.CollectionInput{}, err
	}

	input := service.CollectionInput{
		CustomerID: customerID,
		Localbody:  r.Localbody,
		Ward:       r.Ward,
		Location:   r.Location,
		BuildingNo: r.BuildingNo,
		StreetName: r.StreetName,
		KG:         r.KG,
		PhotoData:  r.PhotoData,
	}
	if strings.TrimSpace(r.LocalbodyID) != "" {
		localbodyID, err := uuid.Parse(strings.TrimSpace(r.LocalbodyID))
		if err != nil {
			return service.CollectionInput{}, err
		}
		input.LocalbodyID = localbodyID
	}
	return input, nil
}

type collectionResponse struct {
	ID          uuid.UUID `json:"id"`
	CollectorID uuid.UUID `json:"collector_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Localbody   string    `json:"localbody"`
	Ward        string    `json:"ward"`
	Location    string    `json:"location"`
	BuildingNo  string    `json:"building_no"`
	StreetName  string    `json:"street_name"`
	KG          float64   `json:"kg"`
	RatePerKG   float64   `json:"rate_per_kg"`
	TotalAmount float64   `json:"total_amount"`
	PhotoPath   *string   `json:"photo_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCollectionResponse(collection model.WasteCollection) collectionResponse {
	return collectionResponse{
		ID:          collection.ID,
		CollectorID: collection.CollectorID,
		CustomerID:  collection.CustomerID,
		Localbody:   collection.Localbody,
		Ward:        collection.Ward,
		Location:    collection.Location,
		BuildingNo:  collection.BuildingNo,
		StreetName:  collection.StreetName,
		KG:          collection.KG,
		RatePerKG:   collection.RatePerKG,
		TotalAmount: collection.TotalAmount,
		PhotoPath:   collection.PhotoPath,
		CreatedAt:   collection.CreatedAt,
	}
}

func (h *Handler) createCollection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference id"})
		return
	}

	collection, err := h.collections.Create(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCollectionResponse(*collection))
}

func (h *Handler) updateCollection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference id"})
		return
	}

	collection, err := h.collections.Update(c.Request.Context(), principal, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCollectionResponse(*collection))
}

func (h *Handler) listCollections(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	collections, err := h.collections.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	rows := make([]collectionResponse, 0, len(collections))
	for _, collection := range collections {
		rows = append(rows, toCollectionResponse(collection))
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) deleteCollection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.collections.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) prefillCollection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	profileID, err := uuid.Parse(strings.TrimSpace(c.Query("waste_profile_id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waste_profile_id"})
		return
	}

	prefill, err := h.collections.PrefillFromProfile(c.Request.Context(), principal, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefill)
}

func (h *Handler) billingSummary(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	summary, err := h.reports.BillingSummary(c.Request.Context(), principal, time.Now())
	if err != nil {
		h.handleError(c, err)
		return
	}

	type localbodyRow struct {
		Localbody   string  `json:"localbody"`
		Weight      float64 `json:"weight"`
		Revenue     float64 `json:"revenue"`
		Collections int64   `json:"collections"`
	}
	rows := make([]localbodyRow, 0, len(summary.Localbodies))
	for _, stat := range summary.Localbodies {
		rows = append(rows, localbodyRow{
			Localbody:   stat.Localbody,
			Weight:      stat.TotalWeightKG,
			Revenue:     stat.TotalRevenue,
			Collections: stat.CollectionCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"period_start":     summary.PeriodStart.Format(time.DateOnly),
		"period_end":       summary.PeriodEnd.AddDate(0, 0, -1).Format(time.DateOnly),
		"total_weight":     summary.TotalWeightKG,
		"total_revenue":    summary.TotalRevenue,
		"collection_count": summary.CollectionCount,
		"localbody_stats":  rows,
	})
}

func (h *Handler) exportBillingSummary(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var result *service.ExportResult
	var contentType string
	var err error

	switch strings.ToLower(c.DefaultQuery("format", "xlsx")) {
	case "xlsx":
		result, err = h.reports.ExportXLSX(c.Request.Context(), principal, time.Now())
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		result, err = h.reports.ExportPDF(c.Request.Context(), principal, time.Now())
		contentType = "application/pdf"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid format"})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}
