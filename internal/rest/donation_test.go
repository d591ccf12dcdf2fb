package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ngoPortal/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDonationService struct {
	donate func(ctx context.Context, userID, campaignID uint, amount float64) (domain.Donation, error)
}

func (s stubDonationService) Donate(ctx context.Context, userID, campaignID uint, amount float64) (domain.Donation, error) {
	return s.donate(ctx, userID, campaignID, amount)
}

func donationCtx(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))
	return c, rec
}

func TestDonateHandler(t *testing.T) {
	handler := NewDonationHandler(stubDonationService{
		donate: func(ctx context.Context, userID, campaignID uint, amount float64) (domain.Donation, error) {
			assert.Equal(t, uint(7), userID)
			assert.Equal(t, uint(1), campaignID)
			assert.Equal(t, 400.0, amount)
			return domain.Donation{
				ID:         1,
				Reference:  "ref-1",
				UserID:     userID,
				CampaignID: campaignID,
				Amount:     amount,
				DonatedAt:  time.Now(),
			}, nil
		},
	})

	c, rec := donationCtx(t, `{"campaign_id":1,"amount":400}`)
	require.NoError(t, handler.Donate(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success  bool            `json:"success"`
		Donation domain.Donation `json:"donation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ref-1", resp.Donation.Reference)
}

func TestDonateHandlerRejectsNonPositiveAmount(t *testing.T) {
	called := false
	handler := NewDonationHandler(stubDonationService{
		donate: func(ctx context.Context, userID, campaignID uint, amount float64) (domain.Donation, error) {
			called = true
			return domain.Donation{}, nil
		},
	})

	for _, body := range []string{
		`{"campaign_id":1,"amount":-5}`,
		`{"campaign_id":1,"amount":0}`,
		`{"campaign_id":1}`,
		`{"amount":100}`,
	} {
		c, rec := donationCtx(t, body)
		require.NoError(t, handler.Donate(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}

	assert.False(t, called, "service must not be reached on invalid input")
}

func TestDonateHandlerCampaignNotFound(t *testing.T) {
	handler := NewDonationHandler(stubDonationService{
		donate: func(ctx context.Context, userID, campaignID uint, amount float64) (domain.Donation, error) {
			return domain.Donation{}, fmt.Errorf("campaign %w", domain.ErrNotFound)
		},
	})

	c, rec := donationCtx(t, `{"campaign_id":99,"amount":50}`)
	require.NoError(t, handler.Donate(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: you do not own this ngo", domain.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("campaign %w", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("volunteer application %w", domain.ErrConflict), http.StatusConflict},
		{fmt.Errorf("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, msg := statusFromError(tc.err)
		assert.Equal(t, tc.status, status)
		if tc.status == http.StatusInternalServerError {
			// storage detail never leaks
			assert.Equal(t, "internal server error", msg)
		}
	}
}
