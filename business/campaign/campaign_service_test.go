package campaign

import (
	"context"
	"fmt"
	"testing"

	"ngoPortal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampaignRepo struct {
	created []domain.Campaign
}

func (r *fakeCampaignRepo) Create(ctx context.Context, campaign *domain.Campaign) error {
	campaign.ID = uint(len(r.created) + 1)
	r.created = append(r.created, *campaign)
	return nil
}

func (r *fakeCampaignRepo) FindAllWithNGO(ctx context.Context) ([]domain.CampaignWithNGO, error) {
	return nil, nil
}

func (r *fakeCampaignRepo) FindByNGO(ctx context.Context, ngoID uint) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range r.created {
		if c.NGOID == ngoID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeNGORepo struct {
	ngos map[uint]domain.NGO
}

func (r *fakeNGORepo) FindByID(ctx context.Context, id uint) (domain.NGO, error) {
	ngo, ok := r.ngos[id]
	if !ok {
		return domain.NGO{}, fmt.Errorf("ngo %w", domain.ErrNotFound)
	}
	return ngo, nil
}

type fakeVolunteerRepo struct {
	applicants map[uint][]domain.VolunteerApplicant
}

func (r *fakeVolunteerRepo) FindApplicantsByNGO(ctx context.Context, ngoID uint) ([]domain.VolunteerApplicant, error) {
	return r.applicants[ngoID], nil
}

func newTestService() (*campaignService, *fakeCampaignRepo, *fakeVolunteerRepo) {
	campaignRepo := &fakeCampaignRepo{}
	ngoRepo := &fakeNGORepo{ngos: map[uint]domain.NGO{
		1: {ID: 1, Name: "Helping Hands", OwnerID: 10},
	}}
	volunteerRepo := &fakeVolunteerRepo{applicants: make(map[uint][]domain.VolunteerApplicant)}

	svc := NewCampaignService(campaignRepo, ngoRepo, volunteerRepo, validator.New())
	return svc, campaignRepo, volunteerRepo
}

func TestCreateCampaign(t *testing.T) {
	svc, repo, _ := newTestService()

	created, err := svc.CreateCampaign(context.Background(), 10, &domain.Campaign{
		NGOID:      1,
		Title:      "Clean Water",
		GoalAmount: 1000,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, 0.0, created.CollectedAmount)
	assert.Len(t, repo.created, 1)
}

func TestCreateCampaignNonOwnerForbidden(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.CreateCampaign(context.Background(), 99, &domain.Campaign{
		NGOID:      1,
		Title:      "Clean Water",
		GoalAmount: 1000,
	})

	// exists but not yours: authorization error, not not-found
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.created)
}

func TestCreateCampaignMissingNGO(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateCampaign(context.Background(), 10, &domain.Campaign{
		NGOID:      42,
		Title:      "Clean Water",
		GoalAmount: 1000,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCampaignValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateCampaign(context.Background(), 10, &domain.Campaign{
		NGOID:      1,
		GoalAmount: 1000,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateCampaign(context.Background(), 10, &domain.Campaign{
		NGOID: 1,
		Title: "Clean Water",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetNGOVolunteersOwnerOnly(t *testing.T) {
	svc, _, volunteerRepo := newTestService()
	volunteerRepo.applicants[1] = []domain.VolunteerApplicant{
		{ID: 1, Status: domain.VolunteerStatusPending, UserName: "Asha"},
	}

	applicants, err := svc.GetNGOVolunteers(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Len(t, applicants, 1)

	_, err = svc.GetNGOVolunteers(context.Background(), 99, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.GetNGOVolunteers(context.Background(), 10, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetNGOVolunteersEmpty(t *testing.T) {
	svc, _, _ := newTestService()

	applicants, err := svc.GetNGOVolunteers(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.NotNil(t, applicants)
	assert.Empty(t, applicants)
}
