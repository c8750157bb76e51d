package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub/pkg/models"
)

// TaskStore persists tasks.
type TaskStore struct {
	db *gorm.DB
}

func (s *TaskStore) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var t models.Task
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// FindOpenBySkills returns open tasks whose required skills intersect the
// given set. Skill slices are stored as JSON, so the intersection is
// evaluated here rather than in SQL.
func (s *TaskStore) FindOpenBySkills(ctx context.Context, skills []string) ([]models.Task, error) {
	var open []models.Task
	if err := s.db.WithContext(ctx).Where("status = ?", models.TaskOpen).Find(&open).Error; err != nil {
		return nil, err
	}

	matched := make([]models.Task, 0, len(open))
	for _, t := range open {
		if t.MatchesSkills(skills) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (s *TaskStore) Create(ctx context.Context, t *models.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *TaskStore) Save(ctx context.Context, t *models.Task) error {
	return s.db.WithContext(ctx).Save(t).Error
}
