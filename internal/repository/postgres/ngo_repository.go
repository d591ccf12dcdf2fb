package postgres

import (
	"context"
	"errors"
	"fmt"

	"ngoPortal/domain"

	"gorm.io/gorm"
)

type NGORepository struct {
	DB *gorm.DB
}

func NewNGORepository(db *gorm.DB) *NGORepository {
	return &NGORepository{
		DB: db,
	}
}

func (r *NGORepository) Create(ctx context.Context, ngo *domain.NGO) error {
	if err := r.DB.WithContext(ctx).Create(ngo).Error; err != nil {
		return err
	}

	return nil
}

func (r *NGORepository) FindByID(ctx context.Context, id uint) (domain.NGO, error) {
	var ngo domain.NGO

	err := r.DB.WithContext(ctx).First(&ngo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NGO{}, fmt.Errorf("ngo %w", domain.ErrNotFound)
		}
		return domain.NGO{}, err
	}

	return ngo, nil
}

func (r *NGORepository) FindAll(ctx context.Context) ([]domain.NGO, error) {
	var ngos []domain.NGO

	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&ngos).Error; err != nil {
		return nil, err
	}

	return ngos, nil
}

func (r *NGORepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.NGO, error) {
	var ngos []domain.NGO

	err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id DESC").Find(&ngos).Error
	if err != nil {
		return nil, err
	}

	return ngos, nil
}
