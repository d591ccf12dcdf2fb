package rest

import (
	"context"
	"net/http"
	"time"

	"ngoPortal/domain"
	"ngoPortal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	DonationHandler struct {
		donationService DonationService
		validate        *validator.Validate
		timeout         time.Duration
	}

	DonationService interface {
		Donate(ctx context.Context, userID, campaignID uint, amount float64) (domain.Donation, error)
	}

	DonationInput struct {
		CampaignID uint    `json:"campaign_id" validate:"required"`
		Amount     float64 `json:"amount" validate:"required,gt=0"`
	}
)

func NewDonationHandler(donationService DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		validate:        validator.New(),
		timeout:         10 * time.Second,
	}
}

func (h *DonationHandler) Donate(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req DonationInput
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate donation input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	donation, err := h.donationService.Donate(ctx, userID, req.CampaignID, req.Amount)
	if err != nil {
		logger.Error("Failed to record donation", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":  true,
		"donation": donation,
	})
}
