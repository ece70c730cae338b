package controllers

import (
	"net/http"

	"campus-backend/middleware"
	"campus-backend/services"
	"campus-backend/utils"

	"github.com/gin-gonic/gin"
)

type SubmitFoodReviewRequest struct {
	Hostel        string `json:"hostel" binding:"required"`
	Week          string `json:"week"`
	TasteRating   int    `json:"taste_rating" binding:"required"`
	HygieneRating int    `json:"hygiene_rating" binding:"required"`
	VarietyRating int    `json:"variety_rating" binding:"required"`
	Comment       string `json:"comment"`
}

type FoodReviewController struct {
	ReviewSvc *services.FoodReviewService
}

func NewFoodReviewController(svc *services.FoodReviewService) *FoodReviewController {
	return &FoodReviewController{ReviewSvc: svc}
}

// SubmitFoodReview handles POST /api/submit-food-review.
func (ctrl *FoodReviewController) SubmitFoodReview(c *gin.Context) {
	var req SubmitFoodReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	_, err := ctrl.ReviewSvc.Submit(services.SubmitFoodReviewInput{
		User:          middleware.CurrentUser(c),
		Hostel:        req.Hostel,
		Week:          req.Week,
		TasteRating:   req.TasteRating,
		HygieneRating: req.HygieneRating,
		VarietyRating: req.VarietyRating,
		Comment:       req.Comment,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Food review submitted")
}

// GetWeeklySummary handles GET /api/get-food-review-summary?week=YYYY-Www.
// Week defaults to the current ISO week when absent.
func (ctrl *FoodReviewController) GetWeeklySummary(c *gin.Context) {
	week, hostels, err := ctrl.ReviewSvc.WeeklySummary(c.Query("week"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"week": week, "hostels": hostels})
}
