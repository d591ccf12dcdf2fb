package donation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"ngoPortal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDonationRepo mirrors the storage contract: the donation insert and the
// campaign-total increment happen as one unit under a single lock, and an
// unknown campaign fails the whole operation.
type fakeDonationRepo struct {
	mu        sync.Mutex
	campaigns map[uint]float64
	donations []domain.Donation
	nextID    uint
}

func newFakeDonationRepo(campaignIDs ...uint) *fakeDonationRepo {
	campaigns := make(map[uint]float64)
	for _, id := range campaignIDs {
		campaigns[id] = 0
	}
	return &fakeDonationRepo{campaigns: campaigns}
}

func (r *fakeDonationRepo) Record(ctx context.Context, donation *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	total, ok := r.campaigns[donation.CampaignID]
	if !ok {
		return fmt.Errorf("campaign %w", domain.ErrNotFound)
	}

	r.campaigns[donation.CampaignID] = total + donation.Amount
	r.nextID++
	donation.ID = r.nextID
	r.donations = append(r.donations, *donation)
	return nil
}

func (r *fakeDonationRepo) collected(campaignID uint) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.campaigns[campaignID]
}

func (r *fakeDonationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.donations)
}

func TestDonate(t *testing.T) {
	repo := newFakeDonationRepo(1)
	svc := NewDonationService(repo)

	donation, err := svc.Donate(context.Background(), 7, 1, 400)
	require.NoError(t, err)

	assert.Equal(t, uint(7), donation.UserID)
	assert.Equal(t, uint(1), donation.CampaignID)
	assert.Equal(t, 400.0, donation.Amount)
	assert.NotEmpty(t, donation.Reference)
	assert.False(t, donation.DonatedAt.IsZero())
	assert.Equal(t, 400.0, repo.collected(1))
}

func TestDonateRejectsNonPositiveAmount(t *testing.T) {
	repo := newFakeDonationRepo(1)
	svc := NewDonationService(repo)

	for _, amount := range []float64{0, -1, -400} {
		_, err := svc.Donate(context.Background(), 7, 1, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	// nothing was written
	assert.Equal(t, 0, repo.count())
	assert.Equal(t, 0.0, repo.collected(1))
}

func TestDonateMissingCampaign(t *testing.T) {
	repo := newFakeDonationRepo(1)
	svc := NewDonationService(repo)

	_, err := svc.Donate(context.Background(), 7, 99, 50)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, repo.count())
}

func TestDonateConcurrentTotalIsExact(t *testing.T) {
	repo := newFakeDonationRepo(1)
	svc := NewDonationService(repo)

	const (
		donors = 50
		amount = 10.0
	)

	var wg sync.WaitGroup
	errs := make(chan error, donors)

	for i := 0; i < donors; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := svc.Donate(context.Background(), userID, 1, amount)
			errs <- err
		}(uint(i + 1))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, donors*amount, repo.collected(1))
	assert.Equal(t, donors, repo.count())
}

func TestDonateEndToEndTotals(t *testing.T) {
	repo := newFakeDonationRepo(1)
	svc := NewDonationService(repo)

	_, err := svc.Donate(context.Background(), 1, 1, 400)
	require.NoError(t, err)
	_, err = svc.Donate(context.Background(), 2, 1, 600)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, repo.collected(1))

	// a third donor with a negative amount changes nothing
	_, err = svc.Donate(context.Background(), 3, 1, -100)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 1000.0, repo.collected(1))
}
