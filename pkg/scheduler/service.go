package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service implements volunteer scheduling: task recommendation, conflict-free
// admission, geofenced attendance, completion with reward accrual, and
// feedback. All state lives in the repositories; the service itself only
// holds the per-key locks that serialize check-then-act sequences.
type Service struct {
	volunteers VolunteerRepository
	tasks      TaskRepository
	apps       ApplicationRepository
	events     EventRepository
	logger     *zap.Logger
	locks      *keyedMutex
	now        func() time.Time
}

// NewService creates a scheduling service backed by the given repositories.
func NewService(volunteers VolunteerRepository, tasks TaskRepository, apps ApplicationRepository, events EventRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		volunteers: volunteers,
		tasks:      tasks,
		apps:       apps,
		events:     events,
		logger:     logger,
		locks:      newKeyedMutex(),
		now:        time.Now,
	}
}

// keyedMutex serializes operations that share a key, such as admissions for
// the same (volunteer, task) pair or capacity updates for the same task.
// Locks are kept for the life of the process; the key space is bounded by
// the number of live volunteers and tasks.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock function.
func (km *keyedMutex) lock(key string) func() {
	km.mu.Lock()
	m, ok := km.locks[key]
	if !ok {
		m = &sync.Mutex{}
		km.locks[key] = m
	}
	km.mu.Unlock()

	m.Lock()
	return m.Unlock
}
