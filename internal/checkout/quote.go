package checkout

import (
	"math/rand"

	"github.com/mvalderrama/flightfunnel/internal/models"
	"github.com/mvalderrama/flightfunnel/pkg/currency"
)

// Totals is the priced breakdown of an itinerary plus its extras.
type Totals struct {
	BaseTotal           float64 `json:"base_total"`
	ExtrasTotal         float64 `json:"extras_total"`
	TotalPrice          float64 `json:"total_price"`
	FormattedBaseTotal  string  `json:"formatted_base_total"`
	FormattedExtras     string  `json:"formatted_extras_total"`
	FormattedTotalPrice string  `json:"formatted_total_price"`
}

// Quote prices an itinerary: the leg fares plus the chosen extras. Extras for
// the return leg are ignored unless the itinerary actually has one on a round
// trip, so a one-way quote cannot be inflated by stray return choices.
func Quote(it models.Itinerary, extras Extras) Totals {
	baseTotal := it.OutboundFlight.Price
	extrasTotal := extras.Outbound.cost()

	if it.ReturnFlight != nil && it.Criteria.RoundTrip() {
		baseTotal += it.ReturnFlight.Price
		extrasTotal += extras.Return.cost()
	}

	total := baseTotal + extrasTotal
	return Totals{
		BaseTotal:           baseTotal,
		ExtrasTotal:         extrasTotal,
		TotalPrice:          total,
		FormattedBaseTotal:  currency.FormatPEN(baseTotal),
		FormattedExtras:     currency.FormatPEN(extrasTotal),
		FormattedTotalPrice: currency.FormatPEN(total),
	}
}

const bookingCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const bookingCodeLength = 6

// BookingCode generates a 6-character confirmation code. Codes are display
// identifiers for the simulated purchase, not security tokens.
func BookingCode() string {
	code := make([]byte, bookingCodeLength)
	for i := range code {
		code[i] = bookingCodeChars[rand.Intn(len(bookingCodeChars))]
	}
	return string(code)
}
