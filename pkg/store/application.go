package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub/pkg/models"
)

// ApplicationStore persists applications.
type ApplicationStore struct {
	db *gorm.DB
}

func (s *ApplicationStore) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var a models.Application
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (s *ApplicationStore) FindByVolunteerAndTask(ctx context.Context, volunteerID, taskID string) (*models.Application, error) {
	var a models.Application
	err := s.db.WithContext(ctx).
		Where("volunteer_id = ? AND task_id = ?", volunteerID, taskID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (s *ApplicationStore) FindApprovedByVolunteer(ctx context.Context, volunteerID string) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Where("volunteer_id = ? AND status = ?", volunteerID, models.StatusApproved).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (s *ApplicationStore) Create(ctx context.Context, a *models.Application) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(a).Error
}

func (s *ApplicationStore) Save(ctx context.Context, a *models.Application) error {
	return s.db.WithContext(ctx).Save(a).Error
}
