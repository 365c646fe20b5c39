package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvalderrama/flightfunnel/internal/models"
	"github.com/mvalderrama/flightfunnel/internal/selection"
)

var ErrNotFound = errors.New("session not found")

// Session binds one search submission to its selection machine and, once
// finalized, the resulting itinerary. The machine is not safe for concurrent
// use on its own, so every access goes through the session's mutex: echo may
// serve two picks for the same session id at once.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	machine   *selection.Machine
	itinerary *models.Itinerary
}

func (s *Session) Phase() models.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Phase()
}

func (s *Session) Criteria() models.SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Criteria()
}

func (s *Session) ChosenOutbound() *models.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.ChosenOutbound()
}

// Pick applies one flight pick to the session's machine and records the
// itinerary when the pick finalizes it. Concurrent picks serialize here; the
// loser of the race observes the machine's advanced phase, not a torn state.
func (s *Session) Pick(flight models.Flight) (*models.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.machine.Pick(flight)
	if err != nil {
		return nil, err
	}
	if it != nil {
		s.itinerary = it
	}
	return it, nil
}

// Itinerary returns the finalized itinerary, or nil while still selecting.
func (s *Session) Itinerary() *models.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itinerary
}

// Store is an in-memory registry of active search sessions. The store mutex
// covers the map; each session guards its own machine.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a fresh session for newly submitted criteria. The previous
// session for the user, if any, is simply abandoned and expires.
func (s *Store) Create(criteria models.SearchCriteria) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		machine:   selection.New(criteria),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()
	s.sessions[sess.ID] = sess
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, ErrNotFound
	}
	return sess, nil
}

// FindItinerary scans sessions for a finalized itinerary by its id.
func (s *Store) FindItinerary(itineraryID string) (models.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.sessions {
		if s.expired(sess) {
			continue
		}
		if it := sess.Itinerary(); it != nil && it.ID == itineraryID {
			return *it, nil
		}
	}
	return models.Itinerary{}, ErrNotFound
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && time.Since(sess.CreatedAt) > s.ttl
}

// evictExpired must be called with the write lock held.
func (s *Store) evictExpired() {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
		}
	}
}
