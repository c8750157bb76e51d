package scheduler

import (
	"context"
	"fmt"

	"volunteerhub/pkg/models"
)

// Recommend returns the open tasks whose required skills intersect the
// volunteer's skill set. No match is not an error: the result is simply
// empty. Order follows the repository and carries no meaning.
func (s *Service) Recommend(ctx context.Context, volunteerID string) ([]models.Task, error) {
	vol, err := s.volunteers.FindByID(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("load volunteer: %w", err)
	}
	if vol == nil {
		return nil, ErrVolunteerNotFound
	}

	tasks, err := s.tasks.FindOpenBySkills(ctx, vol.Skills)
	if err != nil {
		return nil, fmt.Errorf("load open tasks: %w", err)
	}

	matched := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == models.TaskOpen && t.MatchesSkills(vol.Skills) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
