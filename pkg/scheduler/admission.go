package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"volunteerhub/pkg/models"
)

// Overlap reports whether two half-open time windows [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back windows do not overlap.
func Overlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict reports whether the candidate task's window intersects any of
// the given tasks. Callers pass the tasks behind a volunteer's approved
// applications; other statuses never count.
func HasConflict(candidate models.Task, others []models.Task) bool {
	for _, o := range others {
		if Overlap(candidate.StartTime, candidate.EndTime, o.StartTime, o.EndTime) {
			return true
		}
	}
	return false
}

// Apply admits a volunteer onto a task, creating a pending application.
// Preconditions run in order with the first failure winning: the task must
// exist, have a free spot, not already hold an application from this
// volunteer, and not clash with the volunteer's approved commitments.
// FilledSpots is not touched here; spots are claimed at approval time.
func (s *Service) Apply(ctx context.Context, volunteerID, taskID string) (*models.Application, error) {
	unlock := s.locks.lock("apply:" + volunteerID + ":" + taskID)
	defer unlock()

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if task.FilledSpots >= task.MaxVolunteers {
		return nil, ErrTaskFull
	}

	existing, err := s.apps.FindByVolunteerAndTask(ctx, volunteerID, taskID)
	if err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	committed, err := s.approvedTasks(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if HasConflict(*task, committed) {
		return nil, ErrScheduleConflict
	}

	app := &models.Application{
		VolunteerID: volunteerID,
		TaskID:      taskID,
		Status:      models.StatusPending,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.logger.Info("application submitted",
		zap.String("application_id", app.ID),
		zap.String("volunteer_id", volunteerID),
		zap.String("task_id", taskID))
	return app, nil
}

// approvedTasks resolves the tasks behind a volunteer's approved
// applications for conflict checking.
func (s *Service) approvedTasks(ctx context.Context, volunteerID string) ([]models.Task, error) {
	apps, err := s.apps.FindApprovedByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("load approved applications: %w", err)
	}

	tasks := make([]models.Task, 0, len(apps))
	for _, app := range apps {
		t, err := s.tasks.FindByID(ctx, app.TaskID)
		if err != nil {
			return nil, fmt.Errorf("load committed task: %w", err)
		}
		if t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}
