package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ngoPortal/app/echo-server/router"
	campaignService "ngoPortal/business/campaign"
	donationService "ngoPortal/business/donation"
	ngoService "ngoPortal/business/ngo"
	userService "ngoPortal/business/user"
	"ngoPortal/internal/middleware"
	"ngoPortal/internal/repository/notification"
	psqlRepo "ngoPortal/internal/repository/postgres"
	redisRepo "ngoPortal/internal/repository/redis"
	"ngoPortal/internal/rest"
	"ngoPortal/pkg/config"
	"ngoPortal/pkg/database"
	redisDB "ngoPortal/pkg/database/redis"
	"ngoPortal/pkg/logger"
	"ngoPortal/pkg/metrics"
	"ngoPortal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting NGO Portal", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisDB.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisDB.CloseRedisClient(redisClient)

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ngoRepo := psqlRepo.NewNGORepository(db)
	campaignRepo := psqlRepo.NewCampaignRepository(db)
	donationRepo := psqlRepo.NewDonationRepository(db)
	volunteerRepo := psqlRepo.NewVolunteerRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	users := userService.NewUserService(userRepo, donationRepo, volunteerRepo, tokenRepo, validate)
	ngos := ngoService.NewNGOService(ngoRepo, campaignRepo, volunteerRepo, userRepo, mailjetEmail, validate)
	campaigns := campaignService.NewCampaignService(campaignRepo, ngoRepo, volunteerRepo, validate)
	donations := donationService.NewDonationService(donationRepo)

	// Init handler
	userHandler := rest.NewUserHandler(users)
	ngoHandler := rest.NewNGOHandler(ngos)
	campaignHandler := rest.NewCampaignHandler(campaigns)
	donationHandler := rest.NewDonationHandler(donations)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithStore(tokenRepo)

	// Setup routes
	api := e.Group("/api")
	router.SetupAuthRoutes(api, userHandler, authRequired)
	router.SetupNGORoutes(api, ngoHandler, authRequired)
	router.SetupCampaignRoutes(api, campaignHandler, authRequired)
	router.SetupDonationRoutes(api, donationHandler, authRequired)
	router.SetupMetricsRoute(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
