package inventory

import (
	"sort"

	"github.com/mvalderrama/flightfunnel/internal/models"
)

// Store holds the full bidirectional flight inventory. It is loaded once at
// startup and is read-only afterwards, so no locking is needed.
type Store struct {
	flights []models.Flight
}

func NewStore(flights []models.Flight) *Store {
	owned := make([]models.Flight, len(flights))
	for i, f := range flights {
		owned[i] = f.Clone()
	}
	return &Store{flights: owned}
}

// All returns a fresh copy of every record, preserving seed order.
func (s *Store) All() []models.Flight {
	out := make([]models.Flight, len(s.flights))
	for i, f := range s.flights {
		out[i] = f.Clone()
	}
	return out
}

// ByID looks a record up by its stable integer key.
func (s *Store) ByID(id int) (models.Flight, bool) {
	for _, f := range s.flights {
		if f.ID == id {
			return f.Clone(), true
		}
	}
	return models.Flight{}, false
}

func (s *Store) Len() int {
	return len(s.flights)
}

// Origins returns the distinct origin cities in sorted order.
func (s *Store) Origins() []string {
	return s.distinct(func(f models.Flight) string { return f.Origin })
}

// Destinations returns the distinct destination cities in sorted order.
func (s *Store) Destinations() []string {
	return s.distinct(func(f models.Flight) string { return f.Destination })
}

func (s *Store) distinct(key func(models.Flight) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, f := range s.flights {
		k := key(f)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
