package postgres

import (
	"context"
	"fmt"

	"ngoPortal/domain"

	"gorm.io/gorm"
)

type DonationRepository struct {
	DB *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{
		DB: db,
	}
}

// Record appends the donation row and bumps the campaign's running total in
// one transaction. The increment is a single SQL expression so concurrent
// donations to the same campaign serialize in the store and no increment is
// lost; RowsAffected == 0 on the update means the campaign does not exist and
// rolls the insert back.
func (r *DonationRepository) Record(ctx context.Context, donation *domain.Donation) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Campaign{}).
			Where("id = ?", donation.CampaignID).
			UpdateColumn("collected_amount", gorm.Expr("collected_amount + ?", donation.Amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("campaign %w", domain.ErrNotFound)
		}

		if err := tx.Create(donation).Error; err != nil {
			return err
		}

		return nil
	})
}

// FindDetailsByUser lists the user's donations joined with campaign and NGO,
// newest first.
func (r *DonationRepository) FindDetailsByUser(ctx context.Context, userID uint) ([]domain.DonationDetail, error) {
	var donations []domain.DonationDetail

	err := r.DB.WithContext(ctx).
		Table("donations").
		Select(`donations.id, donations.amount, donations.donated_at,
			campaigns.id AS campaign_id, campaigns.title AS campaign_title,
			campaigns.description AS campaign_description,
			ngos.id AS ngo_id, ngos.name AS ngo_name`).
		Joins("JOIN campaigns ON donations.campaign_id = campaigns.id").
		Joins("JOIN ngos ON campaigns.ngo_id = ngos.id").
		Where("donations.user_id = ?", userID).
		Order("donations.donated_at DESC").
		Scan(&donations).Error
	if err != nil {
		return nil, err
	}

	return donations, nil
}
