package itinerary

import (
	"time"

	"github.com/google/uuid"

	"github.com/mvalderrama/flightfunnel/internal/models"
)

// Assemble snapshots the confirmed picks and the criteria that produced them
// into a transferable itinerary. Pure construction, no validation: the
// selection machine guarantees the legs are coherent before calling here.
// Every input is deep-copied so later mutation cannot leak in.
func Assemble(criteria models.SearchCriteria, outbound models.Flight, ret *models.Flight) models.Itinerary {
	it := models.Itinerary{
		ID:             uuid.NewString(),
		Criteria:       criteria.Clone(),
		OutboundFlight: outbound.Clone(),
		CreatedAt:      time.Now().UTC(),
	}
	if ret != nil {
		r := ret.Clone()
		it.ReturnFlight = &r
	}
	return it
}
