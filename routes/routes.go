package routes

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/observability"
)

// SetupRouter wires middleware, static uploads and the API route groups.
func SetupRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	adc *controllers.AdminController,
	uc *controllers.UploadController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	// UploadDir may be relative or absolute.
	r.Static("/uploads", filepath.Clean(cfg.UploadDir))

	origins := cfg.CORSOrigins
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
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reg := observability.InitRegistry()
	r.GET("/metrics", gin.WrapH(observability.MetricsHandler(reg)))

	authRequired := middleware.Auth(cfg.JWTSecret)
	merchantOnly := middleware.Auth(cfg.JWTSecret, models.RoleMerchant)
	adminOnly := middleware.Auth(cfg.JWTSecret, models.RoleAdmin)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(rate.Every(time.Second), 10))
		{
			auth.POST("/login", ac.Login)
			auth.POST("/register", ac.Register)
			auth.GET("/profile", authRequired, ac.Profile)
		}

		hotels := api.Group("/hotels")
		{
			hotels.POST("", merchantOnly, hc.Create)
			hotels.GET("/my-hotels", merchantOnly, hc.MyHotels)

			hotels.GET("/:id", authRequired, hc.GetByID)
			hotels.PUT("/:id", merchantOnly, hc.Update)
			hotels.DELETE("/:id", merchantOnly, hc.Delete)
		}

		admin := api.Group("/admin", adminOnly)
		{
			admin.GET("/hotels/pending", adc.PendingHotels)
			admin.POST("/hotels/:id/review", adc.Review)
			admin.POST("/hotels/:id/toggle", adc.Toggle)
			admin.GET("/hotels", adc.AllHotels)
			admin.GET("/statistics", adc.Statistics)
		}

		upload := api.Group("/upload", authRequired)
		{
			upload.POST("/image", uc.UploadImage)
			upload.POST("/images", uc.UploadImages)
			upload.DELETE("/image/:filename", uc.DeleteImage)
			upload.GET("/hotel/:id/images", uc.HotelImages)
		}
	}

	return r
}
