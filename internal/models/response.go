package models

// EmptyReason identifies which filter stage produced an empty candidate list,
// so the UI can render an accurate message. Precedence when reporting:
// return-gap violation > day ineligibility > generic no-matches.
type EmptyReason string

const (
	ReasonNone               EmptyReason = ""
	ReasonNoValidReturnAfter EmptyReason = "no_valid_return_after_time"
	ReasonNoFlightsForDay    EmptyReason = "no_flights_for_day"
	ReasonNoMatches          EmptyReason = "no_matches"
)

type SearchMetadata struct {
	TotalResults int         `json:"total_results"`
	SearchTimeMs int64       `json:"search_time_ms"`
	CacheHit     bool        `json:"cache_hit"`
	EmptyReason  EmptyReason `json:"empty_reason,omitempty"`
	EmptyMessage string      `json:"empty_message,omitempty"`
}

type SearchResponse struct {
	SessionID string         `json:"session_id"`
	Phase     Phase          `json:"phase"`
	Criteria  SearchCriteria `json:"criteria"`
	Metadata  SearchMetadata `json:"metadata"`
	Flights   []Flight       `json:"flights"`
}

// SelectResponse carries either the next candidate list (still selecting) or
// the finalized itinerary, never both.
type SelectResponse struct {
	SessionID string         `json:"session_id"`
	Phase     Phase          `json:"phase"`
	Metadata  SearchMetadata `json:"metadata,omitempty"`
	Flights   []Flight       `json:"flights,omitempty"`
	Itinerary *Itinerary     `json:"itinerary,omitempty"`
}

type RoutesResponse struct {
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
