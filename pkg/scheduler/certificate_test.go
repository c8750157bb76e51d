package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/pkg/models"
)

func newCertificateFixture() *fixture {
	f := newFixture()
	f.volunteers.volunteers["v1"] = &models.Volunteer{ID: "v1", Name: "Asha Rao"}
	f.events.events["e1"] = &models.Event{ID: "e1", Title: "Beach Cleanup"}

	s, e := taskWindow(10, 4)
	f.tasks.tasks["t1"] = &models.Task{ID: "t1", EventID: "e1", Title: "Litter picking", StartTime: s, EndTime: e}
	f.apps.apps["a1"] = &models.Application{ID: "a1", VolunteerID: "v1", TaskID: "t1", Status: models.StatusCompleted}
	return f
}

func TestCertificateEligible_Completed(t *testing.T) {
	f := newCertificateFixture()

	cert, err := f.svc.CertificateEligible(context.Background(), "a1", "v1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", cert.VolunteerName)
	assert.Equal(t, "Beach Cleanup", cert.EventTitle)
	assert.Equal(t, "Litter picking", cert.TaskTitle)
	assert.Equal(t, f.now, cert.IssuedAt)
}

func TestCertificateEligible_NotCompleted(t *testing.T) {
	f := newCertificateFixture()
	f.apps.apps["a1"].Status = models.StatusApproved

	_, err := f.svc.CertificateEligible(context.Background(), "a1", "v1")
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestCertificateEligible_NotOwner(t *testing.T) {
	f := newCertificateFixture()

	_, err := f.svc.CertificateEligible(context.Background(), "a1", "v2")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestCertificateEligible_ApplicationMissing(t *testing.T) {
	f := newCertificateFixture()

	_, err := f.svc.CertificateEligible(context.Background(), "nope", "v1")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
