package models

import "time"

// Itinerary is the finalized outcome of a selection session: the criteria that
// produced it plus the chosen legs. It is an immutable snapshot; mutating the
// original criteria or flights after assembly must not affect it.
type Itinerary struct {
	ID             string         `json:"id"`
	Criteria       SearchCriteria `json:"criteria"`
	OutboundFlight Flight         `json:"outbound_flight"`
	ReturnFlight   *Flight        `json:"return_flight,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
