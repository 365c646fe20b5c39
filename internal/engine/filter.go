package engine

import (
	"sort"
	"time"

	"github.com/mvalderrama/flightfunnel/internal/models"
)

// MinReturnGapMinutes is the minimum distance between the chosen outbound
// departure and a same-day return departure.
const MinReturnGapMinutes = 120

// Result is the ranked candidate list for the current phase plus advisory
// flags explaining an empty list. Flags never short-circuit the pipeline: a
// stage that empties the set records its flag and the remaining stages still
// run on the empty slice.
type Result struct {
	Flights                []models.Flight
	NoFlightsForDay        bool
	NoValidReturnAfterTime bool
}

// Reason maps the flags to a single empty-state code. The same-day gap
// violation wins over day ineligibility because it is decided later in the
// pipeline; both lose to a non-empty result.
func (r Result) Reason() models.EmptyReason {
	if len(r.Flights) > 0 {
		return models.ReasonNone
	}
	if r.NoValidReturnAfterTime {
		return models.ReasonNoValidReturnAfter
	}
	if r.NoFlightsForDay {
		return models.ReasonNoFlightsForDay
	}
	return models.ReasonNoMatches
}

// Filter runs the staged filtering pass for one phase of the selection flow.
// chosenOutbound is only consulted in the return phase and may be nil
// otherwise. The inventory slice is never mutated.
func Filter(inventory []models.Flight, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight) Result {
	result := Result{}

	flights := filterRoute(inventory, criteria, phase)
	flights, result.NoFlightsForDay = filterOperatingDay(flights, criteria, phase)
	flights, result.NoValidReturnAfterTime = filterReturnGap(flights, criteria, phase, chosenOutbound)

	if criteria.Airline != "" && criteria.Airline != models.AnyAirline {
		flights = keep(flights, func(f models.Flight) bool { return f.Airline == criteria.Airline })
	}

	if criteria.OnlyDirect {
		flights = keep(flights, func(f models.Flight) bool { return f.Stops == "Directo" })
	}

	if criteria.MaxPrice != nil {
		maxPrice := *criteria.MaxPrice
		flights = keep(flights, func(f models.Flight) bool { return f.Price <= maxPrice })
	}

	result.Flights = applySort(flights, criteria.Order)
	return result
}

// filterRoute selects the records for the route implied by phase and trip
// type. A return leg of a round trip is always the mechanical inverse of the
// outbound criteria; the user never re-enters a destination. Otherwise the
// sentinel "Todos" disables that side of the predicate entirely.
func filterRoute(flights []models.Flight, criteria models.SearchCriteria, phase models.Phase) []models.Flight {
	if phase == models.PhaseReturn && criteria.RoundTrip() {
		return keep(flights, func(f models.Flight) bool {
			return f.Origin == criteria.Destination && f.Destination == criteria.Origin
		})
	}

	return keep(flights, func(f models.Flight) bool {
		if criteria.Origin != "" && criteria.Origin != models.AnyLocation && f.Origin != criteria.Origin {
			return false
		}
		if criteria.Destination != "" && criteria.Destination != models.AnyLocation && f.Destination != criteria.Destination {
			return false
		}
		return true
	})
}

// filterOperatingDay keeps records operating on the day of week implied by the
// relevant date: depart date in the outbound phase, return date in the return
// phase of a round trip. One-way and multi searches only constrain the
// outbound phase.
func filterOperatingDay(flights []models.Flight, criteria models.SearchCriteria, phase models.Phase) ([]models.Flight, bool) {
	var date string
	switch {
	case phase == models.PhaseOutbound:
		date = criteria.DepartDate
	case phase == models.PhaseReturn && criteria.RoundTrip():
		date = criteria.ReturnDate
	}
	if date == "" {
		return flights, false
	}

	dow, err := dayOfWeek(date)
	if err != nil {
		return flights, false
	}

	before := len(flights)
	result := keep(flights, func(f models.Flight) bool { return f.OperatesOn(dow) })
	return result, before > 0 && len(result) == 0
}

// filterReturnGap enforces the same-day minimum layover: when outbound and
// return share a date, a return candidate must depart at least
// MinReturnGapMinutes after the chosen outbound (inclusive boundary). The rule
// only fires under the exact triple condition below.
func filterReturnGap(flights []models.Flight, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight) ([]models.Flight, bool) {
	if phase != models.PhaseReturn || !criteria.RoundTrip() ||
		criteria.DepartDate != criteria.ReturnDate || chosenOutbound == nil {
		return flights, false
	}

	outboundMinutes, err := minutesOfDay(chosenOutbound.DepartureTime)
	if err != nil {
		return flights, false
	}
	earliest := outboundMinutes + MinReturnGapMinutes

	before := len(flights)
	result := keep(flights, func(f models.Flight) bool {
		minutes, err := minutesOfDay(f.DepartureTime)
		return err == nil && minutes >= earliest
	})
	return result, before > 0 && len(result) == 0
}

func applySort(flights []models.Flight, order models.SortOrder) []models.Flight {
	switch order {
	case models.OrderPriceAsc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price < flights[j].Price
		})
	case models.OrderPriceDesc:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price > flights[j].Price
		})
	case models.OrderDepartureAsc:
		// "HH:MM" is zero-padded, so lexical order equals chronological order.
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DepartureTime < flights[j].DepartureTime
		})
	}
	return flights
}

// keep copies the matching records into a fresh slice.
func keep(flights []models.Flight, match func(models.Flight) bool) []models.Flight {
	result := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		if match(f) {
			result = append(result, f)
		}
	}
	return result
}

func minutesOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// dayOfWeek maps an ISO date to its 0=Sunday..6=Saturday index.
func dayOfWeek(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}
