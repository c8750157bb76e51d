package scheduler

import (
	"context"
	"time"

	"volunteerhub/pkg/models"
)

// Certificate holds the facts a caller needs to render a completion
// certificate. The service only decides eligibility; layout is not its
// problem.
type Certificate struct {
	VolunteerName string    `json:"volunteer_name"`
	EventTitle    string    `json:"event_title"`
	TaskTitle     string    `json:"task_title"`
	IssuedAt      time.Time `json:"issued_at"`
}

// CertificateEligible returns certificate data for a completed application
// owned by the requesting volunteer. Anything short of verified completion
// is ErrNotCompleted.
func (s *Service) CertificateEligible(ctx context.Context, applicationID, volunteerID string) (*Certificate, error) {
	app, task, event, err := s.resolveVenue(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.VolunteerID != volunteerID {
		return nil, ErrNotAuthorized
	}
	if app.Status != models.StatusCompleted {
		return nil, ErrNotCompleted
	}

	vol, err := s.volunteers.FindByID(ctx, app.VolunteerID)
	if err != nil {
		return nil, err
	}
	if vol == nil {
		return nil, ErrVolunteerNotFound
	}

	return &Certificate{
		VolunteerName: vol.Name,
		EventTitle:    event.Title,
		TaskTitle:     task.Title,
		IssuedAt:      s.now(),
	}, nil
}
