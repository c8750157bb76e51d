package scheduler

import (
	"context"
	"fmt"

	"volunteerhub/pkg/models"
)

// SubmitFeedback attaches a rating and comment to the volunteer's own
// application. Only the owning volunteer may write; resubmitting replaces
// the earlier rating and text outright.
func (s *Service) SubmitFeedback(ctx context.Context, applicationID, volunteerID string, rating int, feedback string) (*models.Application, error) {
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

	app.Rating = &rating
	app.Feedback = feedback
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	return app, nil
}
