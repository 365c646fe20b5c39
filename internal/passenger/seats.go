package passenger

// seatMap is the small demo cabin: rows 1-3, seats A-D.
var seatMap = []string{
	"1A", "1B", "1C", "1D",
	"2A", "2B", "2C", "2D",
	"3A", "3B", "3C", "3D",
}

// Seats returns the full cabin seat list in row order.
func Seats() []string {
	out := make([]string, len(seatMap))
	copy(out, seatMap)
	return out
}

// AvailableSeats returns the seats not yet claimed by the given assignments.
func AvailableSeats(taken []string) []string {
	claimed := make(map[string]bool, len(taken))
	for _, s := range taken {
		if s != "" {
			claimed[s] = true
		}
	}

	out := make([]string, 0, len(seatMap))
	for _, s := range seatMap {
		if !claimed[s] {
			out = append(out, s)
		}
	}
	return out
}

func checkSeat(seat string, taken map[string]bool) error {
	if seat == "" {
		return ErrMissingSeat
	}
	if !validSeat(seat) {
		return ErrSeatUnknown
	}
	if taken[seat] {
		return ErrSeatTaken
	}
	return nil
}

func validSeat(seat string) bool {
	for _, s := range seatMap {
		if s == seat {
			return true
		}
	}
	return false
}
