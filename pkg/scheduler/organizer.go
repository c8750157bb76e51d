package scheduler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"volunteerhub/pkg/models"
)

// CreateEvent registers a new event owned by the given organizer.
func (s *Service) CreateEvent(ctx context.Context, organizerID string, event *models.Event) (*models.Event, error) {
	event.OrganizerID = organizerID
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.logger.Info("event created",
		zap.String("event_id", event.ID),
		zap.String("organizer_id", organizerID))
	return event, nil
}

// CreateTask adds a task under an event. The time window must be forward
// (start < end) and capacity at least one.
func (s *Service) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	event, err := s.events.FindByID(ctx, task.EventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if !task.StartTime.Before(task.EndTime) {
		return nil, ErrInvalidTimeWindow
	}
	if task.MaxVolunteers < 1 {
		task.MaxVolunteers = 1
	}
	task.Status = models.TaskOpen
	task.FilledSpots = 0

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Approve moves a pending application to approved and claims a spot on the
// task. Spots are counted here, not at apply time, so a withdrawn or
// rejected application never holds capacity. The task closes when full.
func (s *Service) Approve(ctx context.Context, applicationID string) (*models.Application, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	unlock := s.locks.lock("task:" + app.TaskID)
	defer unlock()

	// Re-read under the lock so concurrent approvals of the same
	// application cannot both see it pending.
	app, err = s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.Status != models.StatusPending {
		return nil, ErrNotPending
	}

	task, err := s.tasks.FindByID(ctx, app.TaskID)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.FilledSpots >= task.MaxVolunteers {
		return nil, ErrTaskFull
	}

	app.Status = models.StatusApproved
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	task.FilledSpots++
	if task.FilledSpots >= task.MaxVolunteers {
		task.Status = models.TaskClosed
	}
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	s.logger.Info("application approved",
		zap.String("application_id", app.ID),
		zap.String("task_id", task.ID),
		zap.Int("filled_spots", task.FilledSpots))
	return app, nil
}

// Reject moves a pending application to rejected.
func (s *Service) Reject(ctx context.Context, applicationID string) (*models.Application, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.Status != models.StatusPending {
		return nil, ErrNotPending
	}

	app.Status = models.StatusRejected
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}
	return app, nil
}

// Stats summarizes platform activity for the organizer dashboard.
type Stats struct {
	TotalVolunteers int64 `json:"total_volunteers"`
	TotalEvents     int64 `json:"total_events"`
}

// Stats counts approved applications and events.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	volunteers, err := s.apps.CountByStatus(ctx, models.StatusApproved)
	if err != nil {
		return Stats{}, fmt.Errorf("count approved applications: %w", err)
	}
	events, err := s.events.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count events: %w", err)
	}
	return Stats{TotalVolunteers: volunteers, TotalEvents: events}, nil
}
