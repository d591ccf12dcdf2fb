package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"ngoPortal/domain"
	"ngoPortal/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CampaignHandler struct {
		campaignService CampaignService
		validate        *validator.Validate
		timeout         time.Duration
	}

	CampaignService interface {
		GetAllCampaigns(ctx context.Context) ([]domain.CampaignWithNGO, error)
		GetCampaignsByNGO(ctx context.Context, ngoID uint) ([]domain.Campaign, error)
		CreateCampaign(ctx context.Context, ownerID uint, campaign *domain.Campaign) (domain.Campaign, error)
		GetNGOVolunteers(ctx context.Context, callerID, ngoID uint) ([]domain.VolunteerApplicant, error)
	}

	CampaignInput struct {
		NGOID       uint    `json:"ngo_id" validate:"required"`
		Title       string  `json:"title" validate:"required"`
		Description string  `json:"description"`
		GoalAmount  float64 `json:"goal_amount" validate:"required,gt=0"`
	}
)

func NewCampaignHandler(campaignService CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		validate:        validator.New(),
		timeout:         10 * time.Second,
	}
}

func (h *CampaignHandler) GetAllCampaigns(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	campaigns, err := h.campaignService.GetAllCampaigns(ctx)
	if err != nil {
		logger.Error("Failed to get campaigns", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(campaigns))
}

func (h *CampaignHandler) GetCampaignsByNGO(c echo.Context) error {
	ngoID, err := strconv.ParseUint(c.Param("ngoId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid ngo ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	campaigns, err := h.campaignService.GetCampaignsByNGO(ctx, uint(ngoID))
	if err != nil {
		logger.Error("Failed to get campaigns for ngo", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(campaigns))
}

func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req CampaignInput
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate campaign input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	campaign, err := h.campaignService.CreateCampaign(ctx, userID, &domain.Campaign{
		NGOID:       req.NGOID,
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
	})
	if err != nil {
		logger.Error("Failed to create campaign", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(campaign))
}

func (h *CampaignHandler) GetNGOVolunteers(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ngoID, err := strconv.ParseUint(c.Param("ngoId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid ngo ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	applicants, err := h.campaignService.GetNGOVolunteers(ctx, userID, uint(ngoID))
	if err != nil {
		logger.Error("Failed to get ngo volunteers", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(applicants))
}
