package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub/pkg/models"
)

// VolunteerStore persists volunteers.
type VolunteerStore struct {
	db *gorm.DB
}

func (s *VolunteerStore) FindByID(ctx context.Context, id string) (*models.Volunteer, error) {
	var v models.Volunteer
	if err := s.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *VolunteerStore) FindByEmail(ctx context.Context, email string) (*models.Volunteer, error) {
	var v models.Volunteer
	if err := s.db.WithContext(ctx).First(&v, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *VolunteerStore) Create(ctx context.Context, v *models.Volunteer) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *VolunteerStore) Save(ctx context.Context, v *models.Volunteer) error {
	return s.db.WithContext(ctx).Save(v).Error
}
