package postgres

import (
	"context"
	"errors"
	"fmt"

	"ngoPortal/domain"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	DB *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{
		DB: db,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	if err := r.DB.WithContext(ctx).Create(campaign).Error; err != nil {
		return err
	}

	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uint) (domain.Campaign, error) {
	var campaign domain.Campaign

	err := r.DB.WithContext(ctx).First(&campaign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Campaign{}, fmt.Errorf("campaign %w", domain.ErrNotFound)
		}
		return domain.Campaign{}, err
	}

	return campaign, nil
}

// FindByIDAndNGO resolves a campaign only when it belongs to the given NGO.
func (r *CampaignRepository) FindByIDAndNGO(ctx context.Context, id, ngoID uint) (domain.Campaign, error) {
	var campaign domain.Campaign

	err := r.DB.WithContext(ctx).Where("id = ? AND ngo_id = ?", id, ngoID).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Campaign{}, fmt.Errorf("campaign %w", domain.ErrNotFound)
		}
		return domain.Campaign{}, err
	}

	return campaign, nil
}

// FindAllWithNGO lists campaigns joined with their NGO's name, newest first.
func (r *CampaignRepository) FindAllWithNGO(ctx context.Context) ([]domain.CampaignWithNGO, error) {
	var campaigns []domain.CampaignWithNGO

	err := r.DB.WithContext(ctx).
		Table("campaigns").
		Select("campaigns.*, ngos.name AS ngo_name").
		Joins("JOIN ngos ON campaigns.ngo_id = ngos.id").
		Order("campaigns.id DESC").
		Scan(&campaigns).Error
	if err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (r *CampaignRepository) FindByNGO(ctx context.Context, ngoID uint) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign

	err := r.DB.WithContext(ctx).Where("ngo_id = ?", ngoID).Order("id DESC").Find(&campaigns).Error
	if err != nil {
		return nil, err
	}

	return campaigns, nil
}
