package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/pkg/models"
)

func TestCreateEvent_SetsOwner(t *testing.T) {
	f := newFixture()

	event, err := f.svc.CreateEvent(context.Background(), "org1", &models.Event{Title: "Marathon", Lat: 51.5, Lng: -0.12})
	require.NoError(t, err)
	assert.Equal(t, "org1", event.OrganizerID)
	assert.NotEmpty(t, event.ID)
}

func TestCreateTask_Validates(t *testing.T) {
	f := newFixture()
	f.events.events["e1"] = &models.Event{ID: "e1", Title: "Marathon"}

	s, e := taskWindow(10, 2)

	t.Run("ok", func(t *testing.T) {
		task, err := f.svc.CreateTask(context.Background(), &models.Task{
			EventID: "e1", Title: "Water station", StartTime: s, EndTime: e, MaxVolunteers: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TaskOpen, task.Status)
		assert.Equal(t, 0, task.FilledSpots)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := f.svc.CreateTask(context.Background(), &models.Task{
			EventID: "nope", Title: "Water station", StartTime: s, EndTime: e,
		})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("inverted window", func(t *testing.T) {
		_, err := f.svc.CreateTask(context.Background(), &models.Task{
			EventID: "e1", Title: "Water station", StartTime: e, EndTime: s,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeWindow)
	})

	t.Run("zero capacity defaults to one", func(t *testing.T) {
		task, err := f.svc.CreateTask(context.Background(), &models.Task{
			EventID: "e1", Title: "Water station", StartTime: s, EndTime: e,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, task.MaxVolunteers)
	})
}

func newModerationFixture() *fixture {
	f := newFixture()
	s, e := taskWindow(10, 2)
	f.tasks.tasks["t1"] = &models.Task{ID: "t1", EventID: "e1", StartTime: s, EndTime: e, MaxVolunteers: 1, Status: models.TaskOpen}
	f.apps.apps["a1"] = &models.Application{ID: "a1", VolunteerID: "v1", TaskID: "t1", Status: models.StatusPending}
	return f
}

func TestApprove_ClaimsSpotAndClosesWhenFull(t *testing.T) {
	f := newModerationFixture()

	app, err := f.svc.Approve(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, app.Status)

	task := f.tasks.tasks["t1"]
	assert.Equal(t, 1, task.FilledSpots)
	assert.Equal(t, models.TaskClosed, task.Status)
}

func TestApprove_FullTask(t *testing.T) {
	f := newModerationFixture()
	f.tasks.tasks["t1"].FilledSpots = 1

	_, err := f.svc.Approve(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrTaskFull)
	assert.Equal(t, models.StatusPending, f.apps.apps["a1"].Status)
}

func TestApprove_OnlyPending(t *testing.T) {
	f := newModerationFixture()
	f.apps.apps["a1"].Status = models.StatusApproved

	_, err := f.svc.Approve(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, 0, f.tasks.tasks["t1"].FilledSpots)
}

func TestReject(t *testing.T) {
	f := newModerationFixture()

	app, err := f.svc.Reject(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, app.Status)
	assert.Equal(t, 0, f.tasks.tasks["t1"].FilledSpots)

	_, err = f.svc.Reject(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestStats(t *testing.T) {
	f := newFixture()
	f.events.events["e1"] = &models.Event{ID: "e1"}
	f.events.events["e2"] = &models.Event{ID: "e2"}
	f.apps.apps["a1"] = &models.Application{ID: "a1", Status: models.StatusApproved}
	f.apps.apps["a2"] = &models.Application{ID: "a2", Status: models.StatusPending}
	f.apps.apps["a3"] = &models.Application{ID: "a3", Status: models.StatusApproved}

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalVolunteers)
	assert.Equal(t, int64(2), stats.TotalEvents)
}
