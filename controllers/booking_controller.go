package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"campus-backend/middleware"
	"campus-backend/models"
	"campus-backend/services"
	"campus-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	Room                string   `json:"room" binding:"required"`
	Date                string   `json:"date" binding:"required"`
	StartTime           string   `json:"start_time" binding:"required"`
	EndTime             string   `json:"end_time" binding:"required"`
	ExpectedArrivalTime string   `json:"expected_arrival_time"`
	Purpose             string   `json:"purpose"`
	Attendees           []string `json:"attendees"`
}

type recordIDPayload struct {
	ID interface{} `json:"id" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
	SafetySvc  *services.SafetyService
}

func NewBookingController(bookingSvc *services.BookingService, safetySvc *services.SafetyService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, SafetySvc: safetySvc}
}

// CreateBooking handles POST /api/create-booking.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	var attendees []byte
	if len(req.Attendees) > 0 {
		attendees, _ = json.Marshal(req.Attendees)
	}

	_, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		User:                middleware.CurrentUser(c),
		Room:                req.Room,
		Date:                req.Date,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		ExpectedArrivalTime: req.ExpectedArrivalTime,
		Purpose:             req.Purpose,
		Attendees:           attendees,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Booking submitted")
}

// GetBookings handles GET /api/get-bookings: the caller's own bookings.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListForUser(middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetAllBookings handles GET /api/get-all-bookings: the admin view,
// every booking annotated with its safety-alert state plus the flat
// alert list.
func (ctrl *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	annotated, alerts := ctrl.SafetySvc.AnnotateBookings(bookings, time.Now().UTC())
	c.JSON(http.StatusOK, gin.H{
		"bookings":      annotated,
		"safety_alerts": alerts,
	})
}

// Approve handles POST /api/approve.
func (ctrl *BookingController) Approve(c *gin.Context) {
	ctrl.setStatus(c, models.BookingStatusApproved)
}

// Reject handles POST /api/reject.
func (ctrl *BookingController) Reject(c *gin.Context) {
	ctrl.setStatus(c, models.BookingStatusRejected)
}

func (ctrl *BookingController) setStatus(c *gin.Context, status string) {
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
	if _, err := ctrl.BookingSvc.SetStatus(id, status); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Booking updated")
}

// MarkArrived handles POST /api/mark-arrived: the owning student's
// one-way arrival confirmation.
func (ctrl *BookingController) MarkArrived(c *gin.Context) {
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
	if _, err := ctrl.BookingSvc.MarkArrived(id, middleware.CurrentUser(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Arrival marked")
}
