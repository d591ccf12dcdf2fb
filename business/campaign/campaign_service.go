package campaign

import (
	"context"
	"fmt"

	"ngoPortal/domain"
	"ngoPortal/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	FindAllWithNGO(ctx context.Context) ([]domain.CampaignWithNGO, error)
	FindByNGO(ctx context.Context, ngoID uint) ([]domain.Campaign, error)
}

type NGORepository interface {
	FindByID(ctx context.Context, id uint) (domain.NGO, error)
}

type VolunteerRepository interface {
	FindApplicantsByNGO(ctx context.Context, ngoID uint) ([]domain.VolunteerApplicant, error)
}

type campaignService struct {
	campaignRepo  CampaignRepository
	ngoRepo       NGORepository
	volunteerRepo VolunteerRepository
	validate      *validator.Validate
}

func NewCampaignService(
	campaignRepo CampaignRepository,
	ngoRepo NGORepository,
	volunteerRepo VolunteerRepository,
	validate *validator.Validate,
) *campaignService {
	return &campaignService{
		campaignRepo:  campaignRepo,
		ngoRepo:       ngoRepo,
		volunteerRepo: volunteerRepo,
		validate:      validate,
	}
}

func (s *campaignService) GetAllCampaigns(ctx context.Context) ([]domain.CampaignWithNGO, error) {
	campaigns, err := s.campaignRepo.FindAllWithNGO(ctx)
	if err != nil {
		logger.Error("Failed to fetch campaigns", err)
		return nil, err
	}

	return campaigns, nil
}

func (s *campaignService) GetCampaignsByNGO(ctx context.Context, ngoID uint) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.FindByNGO(ctx, ngoID)
	if err != nil {
		logger.Error("Failed to fetch campaigns for ngo", err)
		return nil, err
	}

	return campaigns, nil
}

// CreateCampaign creates a campaign under an NGO the caller owns. A missing
// NGO is a not-found error; an NGO owned by someone else is an authorization
// error, never a not-found, so "exists but not yours" stays distinguishable.
func (s *campaignService) CreateCampaign(ctx context.Context, ownerID uint, campaign *domain.Campaign) (domain.Campaign, error) {
	if err := s.validate.Var(campaign.Title, "required"); err != nil {
		return domain.Campaign{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	if campaign.GoalAmount <= 0 {
		return domain.Campaign{}, fmt.Errorf("%w: goal amount must be positive", domain.ErrInvalidInput)
	}

	ngo, err := s.ngoRepo.FindByID(ctx, campaign.NGOID)
	if err != nil {
		return domain.Campaign{}, err
	}

	if ngo.OwnerID != ownerID {
		return domain.Campaign{}, fmt.Errorf("%w: you do not own this ngo", domain.ErrForbidden)
	}

	campaign.CollectedAmount = 0

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		logger.Error("Failed to create campaign", err)
		return domain.Campaign{}, err
	}

	return *campaign, nil
}

// GetNGOVolunteers lists applications against any of the NGO's campaigns,
// restricted to the NGO's owner.
func (s *campaignService) GetNGOVolunteers(ctx context.Context, callerID, ngoID uint) ([]domain.VolunteerApplicant, error) {
	ngo, err := s.ngoRepo.FindByID(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	if ngo.OwnerID != callerID {
		return nil, fmt.Errorf("%w: you do not own this ngo", domain.ErrForbidden)
	}

	applicants, err := s.volunteerRepo.FindApplicantsByNGO(ctx, ngoID)
	if err != nil {
		logger.Error("Failed to fetch volunteer applicants", err)
		return nil, err
	}

	if applicants == nil {
		applicants = []domain.VolunteerApplicant{}
	}

	return applicants, nil
}
