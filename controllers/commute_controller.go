package controllers

import (
	"net/http"
	"time"

	"campus-backend/middleware"
	"campus-backend/services"
	"campus-backend/utils"

	"github.com/gin-gonic/gin"
)

type SubmitCommuteRequest struct {
	Date                string `json:"date" binding:"required"`
	ExpectedArrivalTime string `json:"expected_arrival_time" binding:"required"`
	TravelMode          string `json:"travel_mode"`
	Notes               string `json:"notes"`
}

type CommuteController struct {
	CommuteSvc *services.CommuteService
	SafetySvc  *services.SafetyService
}

func NewCommuteController(commuteSvc *services.CommuteService, safetySvc *services.SafetyService) *CommuteController {
	return &CommuteController{CommuteSvc: commuteSvc, SafetySvc: safetySvc}
}

// SubmitCommuteEta handles POST /api/submit-commute-eta.
func (ctrl *CommuteController) SubmitCommuteEta(c *gin.Context) {
	var req SubmitCommuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	_, err := ctrl.CommuteSvc.Submit(services.SubmitCommuteInput{
		User:                middleware.CurrentUser(c),
		Date:                req.Date,
		ExpectedArrivalTime: req.ExpectedArrivalTime,
		TravelMode:          req.TravelMode,
		Notes:               req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Commute ETA submitted")
}

// GetCommuteEntries handles GET /api/get-commute-entries: the caller's
// own entries, each tagged with its overdue message when alerting.
func (ctrl *CommuteController) GetCommuteEntries(c *gin.Context) {
	entries, err := ctrl.CommuteSvc.ListForUser(middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := ctrl.SafetySvc.AnnotateCommuteEntries(entries, time.Now().UTC())
	c.JSON(http.StatusOK, gin.H{"entries": views})
}

// MarkCommuteArrived handles POST /api/mark-commute-arrived.
func (ctrl *CommuteController) MarkCommuteArrived(c *gin.Context) {
	var payload recordIDPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	id, err := parseRecordID(payload.ID)
	if err != nil {
		respondInvalidPayload(c, err)
		return
	}
	if _, err := ctrl.CommuteSvc.MarkArrived(id, middleware.CurrentUser(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Commute arrival marked")
}

// AdminCommuteAlerts handles GET /api/get-admin-commute-alerts.
func (ctrl *CommuteController) AdminCommuteAlerts(c *gin.Context) {
	alerts, err := ctrl.SafetySvc.ListCommuteAlerts(time.Now().UTC())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
