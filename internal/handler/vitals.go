package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/set-night/healthdash/internal/domain"
	"github.com/set-night/healthdash/internal/middleware"
)

type createVitalsRequest struct {
	HeartRate              *int     `json:"heart_rate" binding:"required"`
	Temperature            *float64 `json:"temperature" binding:"required"`
	SpO2                   *int     `json:"spo2" binding:"required"`
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic" binding:"required"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic" binding:"required"`
	Notes                  *string  `json:"notes"`
}

func (r createVitalsRequest) input() domain.VitalsInput {
	return domain.VitalsInput{
		HeartRate:              *r.HeartRate,
		Temperature:            *r.Temperature,
		SpO2:                   *r.SpO2,
		BloodPressureSystolic:  *r.BloodPressureSystolic,
		BloodPressureDiastolic: *r.BloodPressureDiastolic,
		Notes:                  r.Notes,
	}
}

func (h *Handler) ListVitals(c *gin.Context) {
	vitals, err := h.vitals.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vitals)
}

func (h *Handler) CreateVitals(c *gin.Context) {
	var req createVitalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, domain.BadInput("%s", err.Error()))
		return
	}

	in := req.input()
	if err := in.Validate(); err != nil {
		h.writeError(c, err)
		return
	}

	v, err := h.vitals.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) VitalsSummary(c *gin.Context) {
	summary, err := h.vitals.Summary(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) DeleteVitals(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.vitals.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vital deleted successfully"})
}
