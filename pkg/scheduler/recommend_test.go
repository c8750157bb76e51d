package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerhub/pkg/models"
)

func taskWindow(dayHour int, hours int) (time.Time, time.Time) {
	start := time.Date(2025, 6, 2, dayHour, 0, 0, 0, time.UTC)
	return start, start.Add(time.Duration(hours) * time.Hour)
}

func TestRecommend_MatchesOnSkillIntersection(t *testing.T) {
	f := newFixture()
	f.volunteers.volunteers["v1"] = &models.Volunteer{ID: "v1", Skills: []string{"first-aid", "cooking"}}

	s1, e1 := taskWindow(9, 3)
	f.tasks.tasks["t1"] = &models.Task{ID: "t1", RequiredSkills: []string{"first-aid"}, StartTime: s1, EndTime: e1, Status: models.TaskOpen}
	f.tasks.tasks["t2"] = &models.Task{ID: "t2", RequiredSkills: []string{"driving"}, StartTime: s1, EndTime: e1, Status: models.TaskOpen}
	f.tasks.tasks["t3"] = &models.Task{ID: "t3", RequiredSkills: []string{"cooking"}, StartTime: s1, EndTime: e1, Status: models.TaskClosed}

	got, err := f.svc.Recommend(context.Background(), "v1")
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, task := range got {
		ids = append(ids, task.ID)
	}
	assert.ElementsMatch(t, []string{"t1"}, ids)
}

func TestRecommend_NoMatchIsEmptyNotError(t *testing.T) {
	f := newFixture()
	f.volunteers.volunteers["v1"] = &models.Volunteer{ID: "v1", Skills: []string{"juggling"}}

	s1, e1 := taskWindow(9, 3)
	f.tasks.tasks["t1"] = &models.Task{ID: "t1", RequiredSkills: []string{"first-aid"}, StartTime: s1, EndTime: e1, Status: models.TaskOpen}

	got, err := f.svc.Recommend(context.Background(), "v1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommend_VolunteerWithNoSkills(t *testing.T) {
	f := newFixture()
	f.volunteers.volunteers["v1"] = &models.Volunteer{ID: "v1"}

	s1, e1 := taskWindow(9, 3)
	f.tasks.tasks["t1"] = &models.Task{ID: "t1", RequiredSkills: []string{"first-aid"}, StartTime: s1, EndTime: e1, Status: models.TaskOpen}

	got, err := f.svc.Recommend(context.Background(), "v1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommend_UnknownVolunteer(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Recommend(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrVolunteerNotFound)
}
