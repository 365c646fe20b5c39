package selection

import (
	"errors"

	"github.com/mvalderrama/flightfunnel/internal/itinerary"
	"github.com/mvalderrama/flightfunnel/internal/models"
)

var (
	// ErrInvalidSelectionState means a return pick arrived with no outbound
	// leg recorded. Unreachable under normal flow, but the machine refuses to
	// assemble an itinerary with a missing leg rather than proceed silently.
	ErrInvalidSelectionState = errors.New("return pick without a chosen outbound flight")

	// ErrSelectionComplete means a pick arrived after the itinerary was
	// already finalized.
	ErrSelectionComplete = errors.New("selection already complete")
)

// Machine drives the two-phase outbound/return pick flow for one search
// submission. It is created alongside the criteria, advances only on discrete
// picks, and is discarded when a new search begins.
type Machine struct {
	criteria       models.SearchCriteria
	phase          models.Phase
	chosenOutbound *models.Flight
}

func New(criteria models.SearchCriteria) *Machine {
	return &Machine{
		criteria: criteria.Clone(),
		phase:    models.PhaseOutbound,
	}
}

func (m *Machine) Phase() models.Phase {
	return m.phase
}

func (m *Machine) Criteria() models.SearchCriteria {
	return m.criteria.Clone()
}

// ChosenOutbound returns the outbound pick, or nil while still in the
// outbound phase.
func (m *Machine) ChosenOutbound() *models.Flight {
	if m.chosenOutbound == nil {
		return nil
	}
	f := m.chosenOutbound.Clone()
	return &f
}

// Pick advances the machine with a chosen flight. For one-way trips the first
// pick finalizes the itinerary directly; otherwise the first pick stores the
// outbound leg and the second finalizes. A non-nil itinerary means the
// machine reached the complete phase.
func (m *Machine) Pick(flight models.Flight) (*models.Itinerary, error) {
	switch m.phase {
	case models.PhaseOutbound:
		if m.criteria.TripType == models.TripOneWay {
			m.phase = models.PhaseComplete
			it := itinerary.Assemble(m.criteria, flight, nil)
			return &it, nil
		}
		chosen := flight.Clone()
		m.chosenOutbound = &chosen
		m.phase = models.PhaseReturn
		return nil, nil

	case models.PhaseReturn:
		if m.chosenOutbound == nil {
			return nil, ErrInvalidSelectionState
		}
		m.phase = models.PhaseComplete
		it := itinerary.Assemble(m.criteria, *m.chosenOutbound, &flight)
		return &it, nil

	default:
		return nil, ErrSelectionComplete
	}
}
