package scheduler

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"volunteerhub/pkg/models"
)

// In-memory repository fakes. Lookup misses return (nil, nil) per the
// repository contract; err fields force persistence failures.

type mockVolunteerRepo struct {
	volunteers map[string]*models.Volunteer
	findErr    error
	saveErr    error
	saveCalls  int
}

func (m *mockVolunteerRepo) FindByID(ctx context.Context, id string) (*models.Volunteer, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.volunteers[id], nil
}

func (m *mockVolunteerRepo) Save(ctx context.Context, v *models.Volunteer) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.volunteers[v.ID] = v
	return nil
}

type mockTaskRepo struct {
	tasks   map[string]*models.Task
	findErr error
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id string) (*models.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.tasks[id], nil
}

func (m *mockTaskRepo) FindOpenBySkills(ctx context.Context, skills []string) ([]models.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []models.Task
	for _, t := range m.tasks {
		if t.Status == models.TaskOpen {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) Create(ctx context.Context, t *models.Task) error {
	if t.ID == "" {
		t.ID = "task-" + strconv.Itoa(len(m.tasks)+1)
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockTaskRepo) Save(ctx context.Context, t *models.Task) error {
	m.tasks[t.ID] = t
	return nil
}

type mockApplicationRepo struct {
	apps      map[string]*models.Application
	findErr   error
	createErr error
	saveErr   error
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.apps[id], nil
}

func (m *mockApplicationRepo) FindByVolunteerAndTask(ctx context.Context, volunteerID, taskID string) (*models.Application, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, a := range m.apps {
		if a.VolunteerID == volunteerID && a.TaskID == taskID {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockApplicationRepo) FindApprovedByVolunteer(ctx context.Context, volunteerID string) ([]models.Application, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []models.Application
	for _, a := range m.apps {
		if a.VolunteerID == volunteerID && a.Status == models.StatusApproved {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, a := range m.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockApplicationRepo) Create(ctx context.Context, a *models.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
	if a.ID == "" {
		a.ID = "app-" + strconv.Itoa(len(m.apps)+1)
	}
	m.apps[a.ID] = a
	return nil
}

func (m *mockApplicationRepo) Save(ctx context.Context, a *models.Application) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.apps[a.ID] = a
	return nil
}

type mockEventRepo struct {
	events  map[string]*models.Event
	findErr error
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.events[id], nil
}

func (m *mockEventRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.events)), nil
}

func (m *mockEventRepo) Create(ctx context.Context, e *models.Event) error {
	if e.ID == "" {
		e.ID = "event-" + strconv.Itoa(len(m.events)+1)
	}
	m.events[e.ID] = e
	return nil
}

// fixture bundles a service with its fakes for direct inspection.
type fixture struct {
	svc        *Service
	volunteers *mockVolunteerRepo
	tasks      *mockTaskRepo
	apps       *mockApplicationRepo
	events     *mockEventRepo
	now        time.Time
}

func newFixture() *fixture {
	f := &fixture{
		volunteers: &mockVolunteerRepo{volunteers: make(map[string]*models.Volunteer)},
		tasks:      &mockTaskRepo{tasks: make(map[string]*models.Task)},
		apps:       &mockApplicationRepo{apps: make(map[string]*models.Application)},
		events:     &mockEventRepo{events: make(map[string]*models.Event)},
		now:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.volunteers, f.tasks, f.apps, f.events, zap.NewNop())
	f.svc.now = func() time.Time { return f.now }
	return f
}
