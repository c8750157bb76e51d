package scheduler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"volunteerhub/pkg/geo"
	"volunteerhub/pkg/models"
)

// CheckInRadiusMeters is how close to the event venue a volunteer must be
// for a check-in to count.
const CheckInRadiusMeters = 500

// CheckIn records a volunteer's arrival at the venue. The event location is
// resolved through the application's task; each hop failing to resolve is a
// distinct not-found error. A check-in more than CheckInRadiusMeters from
// the venue fails with an OutOfRangeError carrying the measured distance.
// A repeat check-in overwrites the earlier timestamp.
func (s *Service) CheckIn(ctx context.Context, applicationID, volunteerID string, lat, lng float64) (*models.Application, error) {
	app, task, event, err := s.resolveVenue(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.VolunteerID != volunteerID {
		return nil, ErrNotAuthorized
	}

	distance := geo.DistanceMeters(lat, lng, event.Lat, event.Lng)
	if distance > CheckInRadiusMeters {
		return nil, &OutOfRangeError{DistanceMeters: distance}
	}

	now := s.now()
	app.CheckInTime = &now
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save check-in: %w", err)
	}

	s.logger.Info("volunteer checked in",
		zap.String("application_id", app.ID),
		zap.String("task_id", task.ID),
		zap.Float64("distance_m", distance))
	return app, nil
}

// CheckOut stamps the volunteer's departure. There is no geofence on the
// way out; the model stores the timestamp but nothing gates on it.
func (s *Service) CheckOut(ctx context.Context, applicationID, volunteerID string) (*models.Application, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.VolunteerID != volunteerID {
		return nil, ErrNotAuthorized
	}

	now := s.now()
	app.CheckOutTime = &now
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save check-out: %w", err)
	}
	return app, nil
}

// resolveVenue walks application -> task -> event, surfacing which hop is
// missing instead of lazy-loading through the chain.
func (s *Service) resolveVenue(ctx context.Context, applicationID string) (*models.Application, *models.Task, *models.Event, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load application: %w", err)
	}
	if app == nil {
		return nil, nil, nil, ErrApplicationNotFound
	}

	task, err := s.tasks.FindByID(ctx, app.TaskID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load task: %w", err)
	}
	if task == nil {
		return nil, nil, nil, ErrTaskNotFound
	}

	event, err := s.events.FindByID(ctx, task.EventID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load event: %w", err)
	}
	if event == nil {
		return nil, nil, nil, ErrEventNotFound
	}
	return app, task, event, nil
}
