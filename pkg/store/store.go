package store

import (
	"gorm.io/gorm"
)

// Store bundles the gorm-backed repositories behind the scheduler's
// repository interfaces. Lookup misses are reported as (nil, nil), matching
// the repository contract.
type Store struct {
	Volunteers   *VolunteerStore
	Tasks        *TaskStore
	Applications *ApplicationStore
	Events       *EventStore
}

// New wires all repositories onto one gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{
		Volunteers:   &VolunteerStore{db: db},
		Tasks:        &TaskStore{db: db},
		Applications: &ApplicationStore{db: db},
		Events:       &EventStore{db: db},
	}
}
