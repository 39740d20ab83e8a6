package store

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/saveeasy/internal/analytics"
	"github.com/Dan9191/saveeasy/internal/models"
)

// Store is the single writer of AppState. Dispatches are serialized, and
// readers only ever see deep copies.
type Store struct {
	mu      sync.RWMutex
	state   AppState
	subs    map[int]chan AppState
	nextSub int
	log     *logrus.Logger
}

// New creates a store seeded with a copy of initial
func New(initial AppState, log *logrus.Logger) *Store {
	return &Store{
		state: initial.Clone(),
		subs:  make(map[int]chan AppState),
		log:   log,
	}
}

// Dispatch applies an action and returns the resulting snapshot
func (s *Store) Dispatch(a Action) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)
	if a != nil {
		s.log.Debugf("Dispatched %s", a.Name())
	}

	for _, ch := range s.subs {
		publish(ch, s.state.Clone())
	}
	return s.state.Clone()
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// TotalSavings returns the user's current savings balance
func (s *Store) TotalSavings() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User.TotalSavings
}

// Analytics computes the analytics projection for the month containing at
// without changing the stored state
func (s *Store) Analytics(at time.Time) models.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.Compute(s.state.User, s.state.Transactions, s.state.SavingsGoals, at)
}

// Subscribe returns a channel that receives a snapshot after every dispatch.
// A slow reader only sees the latest snapshot. Call cancel to stop receiving.
func (s *Store) Subscribe() (<-chan AppState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan AppState, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func publish(ch chan AppState, snap AppState) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}
