package router

import (
	"ngoPortal/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	auth := api.Group("/auth")

	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)

	auth.POST("/logout", handler.Logout, authRequired)
	auth.GET("/profile", handler.GetProfile, authRequired)
	auth.GET("/profile/participations", handler.GetParticipations, authRequired)
}

func SetupNGORoutes(api *echo.Group, handler *rest.NGOHandler, authRequired echo.MiddlewareFunc) {
	ngos := api.Group("/ngos")

	// static paths must register before /:id
	ngos.GET("/my-ngos", handler.GetMyNGOs, authRequired)
	ngos.GET("/my-volunteers", handler.GetMyVolunteers, authRequired)

	ngos.GET("", handler.GetAllNGOs)
	ngos.GET("/:id", handler.GetNGOByID)
	ngos.POST("", handler.CreateNGO, authRequired)
	ngos.POST("/:ngoId/campaigns/:campaignId/volunteer", handler.Volunteer, authRequired)
}

func SetupCampaignRoutes(api *echo.Group, handler *rest.CampaignHandler, authRequired echo.MiddlewareFunc) {
	campaigns := api.Group("/campaigns")

	campaigns.GET("", handler.GetAllCampaigns)
	campaigns.GET("/ngo/:ngoId", handler.GetCampaignsByNGO)
	campaigns.GET("/volunteers/ngo/:ngoId", handler.GetNGOVolunteers, authRequired)
	campaigns.POST("", handler.CreateCampaign, authRequired)
}

func SetupDonationRoutes(api *echo.Group, handler *rest.DonationHandler, authRequired echo.MiddlewareFunc) {
	donations := api.Group("/donations", authRequired)

	donations.POST("", handler.Donate)
}

func SetupMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
