package controllers

import (
	"net/http"
	"strconv"

	"campus-backend/models"
	"campus-backend/services"
	"campus-backend/utils"

	"github.com/gin-gonic/gin"
)

type CurrentAffairRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	EventDate string `json:"event_date" binding:"required"`
	Category  string `json:"category"`
}

type CurrentAffairsController struct {
	AffairsSvc *services.CurrentAffairsService
}

func NewCurrentAffairsController(svc *services.CurrentAffairsService) *CurrentAffairsController {
	return &CurrentAffairsController{AffairsSvc: svc}
}

// List handles GET /api/current-affairs and GET /api/admin/current-affairs.
func (ctrl *CurrentAffairsController) List(c *gin.Context) {
	items, err := ctrl.AffairsSvc.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if items == nil {
		items = []models.CurrentAffair{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create handles POST /api/admin/current-affairs.
func (ctrl *CurrentAffairsController) Create(c *gin.Context) {
	var req CurrentAffairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	item, err := ctrl.AffairsSvc.Create(services.CurrentAffairInput{
		Title:     req.Title,
		Content:   req.Content,
		EventDate: req.EventDate,
		Category:  req.Category,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Current affair published", "item": item})
}

// Update handles PUT /api/admin/current-affairs/:id.
func (ctrl *CurrentAffairsController) Update(c *gin.Context) {
	id, ok := affairIDParam(c)
	if !ok {
		return
	}
	var req CurrentAffairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	item, err := ctrl.AffairsSvc.Update(id, services.CurrentAffairInput{
		Title:     req.Title,
		Content:   req.Content,
		EventDate: req.EventDate,
		Category:  req.Category,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Current affair updated", "item": item})
}

// Delete handles DELETE /api/admin/current-affairs/:id.
func (ctrl *CurrentAffairsController) Delete(c *gin.Context) {
	id, ok := affairIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.AffairsSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Current affair deleted")
}

func affairIDParam(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		respondInvalidPayload(c, err)
		return 0, false
	}
	return uint(n), true
}
