package donation

import (
	"context"
	"fmt"
	"time"

	"ngoPortal/domain"
	"ngoPortal/pkg/logger"
	"ngoPortal/pkg/metrics"

	"github.com/google/uuid"
)

type DonationRepository interface {
	Record(ctx context.Context, donation *domain.Donation) error
}

type donationService struct {
	donationRepo DonationRepository
}

func NewDonationService(donationRepo DonationRepository) *donationService {
	return &donationService{
		donationRepo: donationRepo,
	}
}

// Donate validates the amount, then hands the repository a donation row whose
// insert and campaign-total increment are applied as one unit. Nothing is
// written when the amount is not positive.
func (s *donationService) Donate(ctx context.Context, userID, campaignID uint, amount float64) (domain.Donation, error) {
	start := time.Now()
	defer func() {
		metrics.DonationRecordLatency.Observe(time.Since(start).Seconds())
	}()

	if campaignID == 0 {
		return domain.Donation{}, fmt.Errorf("%w: campaign_id is required", domain.ErrInvalidInput)
	}

	if amount <= 0 {
		return domain.Donation{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	donation := domain.Donation{
		Reference:  uuid.NewString(),
		UserID:     userID,
		CampaignID: campaignID,
		Amount:     amount,
		DonatedAt:  time.Now(),
	}

	if err := s.donationRepo.Record(ctx, &donation); err != nil {
		logger.Error("Failed to record donation", err)
		return domain.Donation{}, err
	}

	metrics.DonationsRecorded.Inc()
	metrics.DonationAmountTotal.Add(amount)

	return donation, nil
}
