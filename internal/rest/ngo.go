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
	NGOHandler struct {
		ngoService NGOService
		validate   *validator.Validate
		timeout    time.Duration
	}

	NGOService interface {
		CreateNGO(ctx context.Context, ngo *domain.NGO) (domain.NGO, error)
		GetAllNGOs(ctx context.Context) ([]domain.NGO, error)
		GetNGOByID(ctx context.Context, id uint) (domain.NGO, error)
		GetMyNGOs(ctx context.Context, ownerID uint) ([]domain.NGO, error)
		Volunteer(ctx context.Context, userID, ngoID, campaignID uint) (domain.Volunteer, domain.VolunteerNotification, error)
		GetMyVolunteers(ctx context.Context, userID uint) ([]domain.VolunteerDetail, error)
	}

	NGOInput struct {
		Name        string `json:"name" validate:"required"`
		Domain      string `json:"domain"`
		Location    string `json:"location"`
		Contact     string `json:"contact"`
		Description string `json:"description"`
		Objectives  string `json:"objectives"`
		Goals       string `json:"goals"`
	}
)

func NewNGOHandler(ngoService NGOService) *NGOHandler {
	return &NGOHandler{
		ngoService: ngoService,
		validate:   validator.New(),
		timeout:    10 * time.Second,
	}
}

func (h *NGOHandler) GetAllNGOs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ngos, err := h.ngoService.GetAllNGOs(ctx)
	if err != nil {
		logger.Error("Failed to get ngos", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ngos))
}

func (h *NGOHandler) GetNGOByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid ngo ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ngo, err := h.ngoService.GetNGOByID(ctx, uint(id))
	if err != nil {
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ngo))
}

func (h *NGOHandler) GetMyNGOs(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ngos, err := h.ngoService.GetMyNGOs(ctx, userID)
	if err != nil {
		logger.Error("Failed to get owned ngos", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ngos))
}

func (h *NGOHandler) CreateNGO(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	var req NGOInput
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate ngo input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ngo, err := h.ngoService.CreateNGO(ctx, &domain.NGO{
		Name:        req.Name,
		Domain:      req.Domain,
		Location:    req.Location,
		Contact:     req.Contact,
		Description: req.Description,
		Objectives:  req.Objectives,
		Goals:       req.Goals,
		OwnerID:     userID,
	})
	if err != nil {
		logger.Error("Failed to create ngo", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(ngo))
}

func (h *NGOHandler) Volunteer(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ngoID, err := strconv.ParseUint(c.Param("ngoId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid ngo ID"})
	}

	campaignID, err := strconv.ParseUint(c.Param("campaignId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid campaign ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	volunteer, notification, err := h.ngoService.Volunteer(ctx, userID, uint(ngoID), uint(campaignID))
	if err != nil {
		logger.Error("Failed to volunteer for campaign", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Successfully volunteered for campaign",
		"volunteer":    volunteer,
		"notification": notification,
	})
}

func (h *NGOHandler) GetMyVolunteers(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	volunteers, err := h.ngoService.GetMyVolunteers(ctx, userID)
	if err != nil {
		logger.Error("Failed to get volunteer applications", err)
		status, msg := statusFromError(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(volunteers))
}
