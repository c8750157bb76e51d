package scheduler

import (
	"context"

	"volunteerhub/pkg/models"
)

// Repository contracts consumed by the service. Lookup methods return
// (nil, nil) when the entity does not exist; the service maps that to the
// categorized not-found errors. Any other error is a persistence failure
// and propagates unchanged.

// VolunteerRepository persists volunteers, including the hour and badge
// mutations made by the completion engine.
type VolunteerRepository interface {
	FindByID(ctx context.Context, id string) (*models.Volunteer, error)
	Save(ctx context.Context, v *models.Volunteer) error
}

// TaskRepository reads and writes tasks.
type TaskRepository interface {
	FindByID(ctx context.Context, id string) (*models.Task, error)
	// FindOpenBySkills returns open tasks whose required skills intersect
	// the given skill set.
	FindOpenBySkills(ctx context.Context, skills []string) ([]models.Task, error)
	Create(ctx context.Context, t *models.Task) error
	Save(ctx context.Context, t *models.Task) error
}

// ApplicationRepository reads and writes applications.
type ApplicationRepository interface {
	FindByID(ctx context.Context, id string) (*models.Application, error)
	FindByVolunteerAndTask(ctx context.Context, volunteerID, taskID string) (*models.Application, error)
	FindApprovedByVolunteer(ctx context.Context, volunteerID string) ([]models.Application, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Create(ctx context.Context, a *models.Application) error
	Save(ctx context.Context, a *models.Application) error
}

// EventRepository reads and writes events.
type EventRepository interface {
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, e *models.Event) error
}
