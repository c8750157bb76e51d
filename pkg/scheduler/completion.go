package scheduler

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"volunteerhub/pkg/models"
)

// BadgeFiftyHours is awarded once a volunteer's accumulated hours reach
// badgeHoursThreshold. Badges are append-only; nothing here removes one.
const (
	BadgeFiftyHours     = "50 Hours Club"
	badgeHoursThreshold = 50
)

// VerifyCompletion marks an application completed, credits the task's
// duration to the volunteer's hours, and awards any badge the new total
// earns. Re-verifying an already-completed application is a no-op that
// returns the volunteer's current state, so retries never double-count.
func (s *Service) VerifyCompletion(ctx context.Context, applicationID string) (*models.Volunteer, error) {
	unlock := s.locks.lock("complete:" + applicationID)
	defer unlock()

	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	vol, err := s.volunteers.FindByID(ctx, app.VolunteerID)
	if err != nil {
		return nil, fmt.Errorf("load volunteer: %w", err)
	}
	if vol == nil {
		return nil, ErrVolunteerNotFound
	}

	if app.Status == models.StatusCompleted {
		return vol, nil
	}

	task, err := s.tasks.FindByID(ctx, app.TaskID)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	app.Status = models.StatusCompleted
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	// Hours never go down: an inverted or garbage window contributes zero.
	hours := task.EndTime.Sub(task.StartTime).Hours()
	if hours < 0 || math.IsNaN(hours) {
		hours = 0
	}
	vol.TotalHours += hours

	if vol.TotalHours >= badgeHoursThreshold && !vol.HasBadge(BadgeFiftyHours) {
		vol.Badges = append(vol.Badges, BadgeFiftyHours)
		s.logger.Info("badge earned",
			zap.String("volunteer_id", vol.ID),
			zap.String("badge", BadgeFiftyHours))
	}

	if err := s.volunteers.Save(ctx, vol); err != nil {
		return nil, fmt.Errorf("save volunteer: %w", err)
	}

	s.logger.Info("completion verified",
		zap.String("application_id", app.ID),
		zap.String("volunteer_id", vol.ID),
		zap.Float64("hours_credited", hours))
	return vol, nil
}
