package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvalderrama/flightfunnel/internal/engine"
	"github.com/mvalderrama/flightfunnel/internal/models"
)

func testCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		Origin:        "Lima",
		Destination:   "Cusco",
		TripType:      models.TripRoundTrip,
		DepartDate:    "2025-12-01",
		ReturnDate:    "2025-12-01",
		NumPassengers: 1,
	}
}

func TestGenerateKeyIsDeterministic(t *testing.T) {
	criteria := testCriteria()
	outbound := models.Flight{ID: 1}

	a := GenerateKey(criteria, models.PhaseReturn, &outbound)
	b := GenerateKey(criteria, models.PhaseReturn, &outbound)

	assert.Equal(t, a, b)
}

func TestGenerateKeyDiscriminates(t *testing.T) {
	criteria := testCriteria()
	outboundA := models.Flight{ID: 1}
	outboundB := models.Flight{ID: 2}

	base := GenerateKey(criteria, models.PhaseOutbound, nil)

	assert.NotEqual(t, base, GenerateKey(criteria, models.PhaseReturn, nil),
		"phase participates in the key")
	assert.NotEqual(t,
		GenerateKey(criteria, models.PhaseReturn, &outboundA),
		GenerateKey(criteria, models.PhaseReturn, &outboundB),
		"the chosen outbound participates in the key")

	other := testCriteria()
	other.ReturnDate = "2025-12-02"
	assert.NotEqual(t, base, GenerateKey(other, models.PhaseOutbound, nil))
}

func TestNoOpCacheNeverHits(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()
	criteria := testCriteria()

	err := c.Set(ctx, criteria, models.PhaseOutbound, nil, engine.Result{
		Flights: []models.Flight{{ID: 1}},
	})
	assert.NoError(t, err)

	_, found := c.Get(ctx, criteria, models.PhaseOutbound, nil)
	assert.False(t, found)
	assert.NoError(t, c.Close())
}
