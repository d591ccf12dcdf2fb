package postgres

import (
	"context"
	"errors"
	"fmt"

	"ngoPortal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %w", domain.ErrConflict)
		}
		return err
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, fmt.Errorf("user %w", domain.ErrNotFound)
		}
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User

	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, fmt.Errorf("user %w", domain.ErrNotFound)
		}
		return domain.User{}, err
	}

	return user, nil
}

// CountDistinctCampaigns counts the distinct campaigns the user has touched
// through either a donation or a volunteer application.
func (r *UserRepository) CountDistinctCampaigns(ctx context.Context, userID uint) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT campaign_id) FROM (
			SELECT campaign_id FROM donations WHERE user_id = ?
			UNION
			SELECT campaign_id FROM volunteers WHERE user_id = ?
		) AS participations
	`, userID, userID).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
