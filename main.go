package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stayhub-backend/cache"
	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/observability"
	"stayhub-backend/routes"
	"stayhub-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	log.Info().Msg("database connection established, migrations applied")

	statsCache := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if statsCache != nil {
		log.Info().Str("addr", cfg.RedisAddr).Msg("statistics cache enabled")
	}

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	hotelService := services.NewHotelService(db)
	adminService := services.NewAdminService(db, statsCache, int(cfg.CacheTTL.Seconds()))
	uploadService := services.NewUploadService(cfg.UploadDir)

	authController := controllers.NewAuthController(authService)
	hotelController := controllers.NewHotelController(hotelService)
	adminController := controllers.NewAdminController(adminService)
	uploadController := controllers.NewUploadController(uploadService, hotelService)

	router := routes.SetupRouter(cfg, log.Logger, authController, hotelController, adminController, uploadController)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Warn().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
