package models

// Flight is a single record of the static inventory. Records are seeded once
// at startup and never mutated; filtering always works on copies.
type Flight struct {
	ID            int     `json:"id"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Airline       string  `json:"airline"`
	DepartureTime string  `json:"departure_time"` // "HH:MM", 24h, zero-padded
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"` // display string, not computed
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Stops         string  `json:"stops"` // "Directo" or "N escala(s)"
	Fare          string  `json:"fare"`
	DaysOfWeek    []int   `json:"days_of_week,omitempty"` // 0=Sunday..6=Saturday; empty means every day
}

// OperatesOn reports whether the flight runs on the given day-of-week index.
// An empty DaysOfWeek set means the flight operates every day.
func (f Flight) OperatesOn(dayOfWeek int) bool {
	if len(f.DaysOfWeek) == 0 {
		return true
	}
	for _, d := range f.DaysOfWeek {
		if d == dayOfWeek {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, detaching the DaysOfWeek slice.
func (f Flight) Clone() Flight {
	c := f
	if f.DaysOfWeek != nil {
		c.DaysOfWeek = make([]int, len(f.DaysOfWeek))
		copy(c.DaysOfWeek, f.DaysOfWeek)
	}
	return c
}
