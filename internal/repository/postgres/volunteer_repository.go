package postgres

import (
	"context"
	"errors"
	"fmt"

	"ngoPortal/domain"

	"gorm.io/gorm"
)

type VolunteerRepository struct {
	DB *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{
		DB: db,
	}
}

// Create inserts the application. The unique index over
// (user_id, campaign_id) is the duplicate guard; two concurrent inserts for
// the same pair cannot both succeed.
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *domain.Volunteer) error {
	if err := r.DB.WithContext(ctx).Create(volunteer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("volunteer application %w", domain.ErrConflict)
		}
		return err
	}

	return nil
}

// FindDetailsByUser lists the user's applications joined with campaign and
// NGO, newest first.
func (r *VolunteerRepository) FindDetailsByUser(ctx context.Context, userID uint) ([]domain.VolunteerDetail, error) {
	var volunteers []domain.VolunteerDetail

	err := r.DB.WithContext(ctx).
		Table("volunteers").
		Select(`volunteers.id, volunteers.status, volunteers.applied_at,
			campaigns.id AS campaign_id, campaigns.title AS campaign_title,
			campaigns.description AS campaign_description,
			ngos.id AS ngo_id, ngos.name AS ngo_name`).
		Joins("JOIN campaigns ON volunteers.campaign_id = campaigns.id").
		Joins("JOIN ngos ON campaigns.ngo_id = ngos.id").
		Where("volunteers.user_id = ?", userID).
		Order("volunteers.applied_at DESC").
		Scan(&volunteers).Error
	if err != nil {
		return nil, err
	}

	return volunteers, nil
}

// FindApplicantsByNGO lists applications against any of the NGO's campaigns
// joined with the applicant, newest first.
func (r *VolunteerRepository) FindApplicantsByNGO(ctx context.Context, ngoID uint) ([]domain.VolunteerApplicant, error) {
	var applicants []domain.VolunteerApplicant

	err := r.DB.WithContext(ctx).
		Table("volunteers").
		Select(`volunteers.id, volunteers.status, volunteers.applied_at,
			campaigns.id AS campaign_id, campaigns.title AS campaign_title,
			users.name AS user_name, users.email AS user_email, users.mobile AS user_mobile`).
		Joins("JOIN campaigns ON volunteers.campaign_id = campaigns.id").
		Joins("JOIN users ON volunteers.user_id = users.id").
		Where("campaigns.ngo_id = ?", ngoID).
		Order("volunteers.applied_at DESC").
		Scan(&applicants).Error
	if err != nil {
		return nil, err
	}

	return applicants, nil
}
