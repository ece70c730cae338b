package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-backend/controllers"
	"campus-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the route table. Every /api
// route sits behind bearer-token auth; the admin surface additionally
// requires the admin role claim.
func SetupRouter(
	logger *zap.Logger,
	jwtSecret string,
	bc *controllers.BookingController,
	cc *controllers.CommuteController,
	cac *controllers.CurrentAffairsController,
	fc *controllers.FoodReviewController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(jwtSecret))
	{
		// student surface
		api.POST("/create-booking", bc.CreateBooking)
		api.GET("/get-bookings", bc.GetBookings)
		api.POST("/mark-arrived", bc.MarkArrived)

		api.POST("/submit-commute-eta", cc.SubmitCommuteEta)
		api.GET("/get-commute-entries", cc.GetCommuteEntries)
		api.POST("/mark-commute-arrived", cc.MarkCommuteArrived)

		api.POST("/submit-food-review", fc.SubmitFoodReview)
		api.GET("/get-food-review-summary", fc.GetWeeklySummary)

		api.GET("/current-affairs", cac.List)

		// admin surface
		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/get-all-bookings", bc.GetAllBookings)
			admin.POST("/approve", bc.Approve)
			admin.POST("/reject", bc.Reject)
			admin.GET("/get-admin-commute-alerts", cc.AdminCommuteAlerts)

			affairs := admin.Group("/admin/current-affairs")
			{
				affairs.GET("", cac.List)
				affairs.POST("", cac.Create)
				affairs.PUT("/:id", cac.Update)
				affairs.DELETE("/:id", cac.Delete)
			}
		}
	}

	return r
}
