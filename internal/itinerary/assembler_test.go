package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/flightfunnel/internal/models"
)

func TestAssembleSnapshotsInputs(t *testing.T) {
	maxPrice := 500.0
	criteria := models.SearchCriteria{
		Origin:        "Lima",
		Destination:   "Cusco",
		TripType:      models.TripRoundTrip,
		DepartDate:    "2025-12-01",
		ReturnDate:    "2025-12-03",
		MaxPrice:      &maxPrice,
		NumPassengers: 2,
	}
	outbound := models.Flight{ID: 2, Origin: "Lima", Destination: "Cusco", Price: 230, DaysOfWeek: []int{1, 3, 5}}
	ret := models.Flight{ID: 11, Origin: "Cusco", Destination: "Lima", Price: 240, DaysOfWeek: []int{1, 3, 5}}

	it := Assemble(criteria, outbound, &ret)

	assert.NotEmpty(t, it.ID)
	assert.False(t, it.CreatedAt.IsZero())
	assert.Equal(t, 2, it.OutboundFlight.ID)
	require.NotNil(t, it.ReturnFlight)
	assert.Equal(t, 11, it.ReturnFlight.ID)

	// Later mutation of the inputs must not leak into the snapshot.
	maxPrice = 1
	outbound.DaysOfWeek[0] = 6
	ret.Price = 1

	assert.Equal(t, 500.0, *it.Criteria.MaxPrice)
	assert.Equal(t, 1, it.OutboundFlight.DaysOfWeek[0])
	assert.Equal(t, 240.0, it.ReturnFlight.Price)
}

func TestAssembleOneWay(t *testing.T) {
	criteria := models.SearchCriteria{
		Origin:      "Lima",
		Destination: "Santiago",
		TripType:    models.TripOneWay,
		DepartDate:  "2025-12-01",
	}
	outbound := models.Flight{ID: 4, Origin: "Lima", Destination: "Santiago", Price: 820}

	it := Assemble(criteria, outbound, nil)

	assert.Nil(t, it.ReturnFlight)
	assert.Equal(t, models.TripOneWay, it.Criteria.TripType)
}

func TestAssembleGeneratesUniqueIDs(t *testing.T) {
	outbound := models.Flight{ID: 1}

	a := Assemble(models.SearchCriteria{}, outbound, nil)
	b := Assemble(models.SearchCriteria{}, outbound, nil)

	assert.NotEqual(t, a.ID, b.ID)
}
