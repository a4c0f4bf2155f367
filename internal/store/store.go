package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tiendc/go-deepcopy"

	"github.com/derekprior/birdie/internal/schedule"
)

// ErrNotFound reports a missing schedule or round.
var ErrNotFound = errors.New("not found")

// Schedule is a stored schedule with its host-assigned id.
type Schedule struct {
	ID      string
	Rounds  []schedule.Round
	Warning string
}

// Store keeps schedules in memory, keyed by id. Access is serialized,
// and readers get deep copies so stored state only changes through the
// store itself.
type Store struct {
	mu        sync.RWMutex
	schedules map[string]*Schedule
}

// New returns an empty store.
func New() *Store {
	return &Store{schedules: make(map[string]*Schedule)}
}

// Put stores a copy of sc under its id, replacing any previous entry.
func (s *Store) Put(sc *Schedule) error {
	cp := new(Schedule)
	if err := deepcopy.Copy(cp, sc); err != nil {
		return fmt.Errorf("copying schedule: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[cp.ID] = cp
	return nil
}

// Get returns a copy of the schedule with the given id.
func (s *Store) Get(id string) (*Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.schedules[id]
	if !ok {
		return nil, fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	cp := new(Schedule)
	if err := deepcopy.Copy(cp, sc); err != nil {
		return nil, fmt.Errorf("copying schedule: %w", err)
	}
	return cp, nil
}

// ToggleRound inverts the completed flag on one round and returns the
// updated round. Each call flips, so two calls restore the original
// state.
func (s *Store) ToggleRound(scheduleID, roundID string) (schedule.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.schedules[scheduleID]
	if !ok {
		return schedule.Round{}, fmt.Errorf("schedule %s: %w", scheduleID, ErrNotFound)
	}
	for i := range sc.Rounds {
		if sc.Rounds[i].ID != roundID {
			continue
		}
		sc.Rounds[i].Completed = !sc.Rounds[i].Completed
		var cp schedule.Round
		if err := deepcopy.Copy(&cp, &sc.Rounds[i]); err != nil {
			return schedule.Round{}, fmt.Errorf("copying round: %w", err)
		}
		return cp, nil
	}
	return schedule.Round{}, fmt.Errorf("round %s: %w", roundID, ErrNotFound)
}
