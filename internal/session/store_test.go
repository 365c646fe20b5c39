package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/flightfunnel/internal/models"
	"github.com/mvalderrama/flightfunnel/internal/selection"
)

func testCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		Origin:        "Lima",
		Destination:   "Cusco",
		TripType:      models.TripOneWay,
		DepartDate:    "2025-12-01",
		NumPassengers: 1,
	}
}

func TestCreateAndGet(t *testing.T) {
	store := NewStore(time.Minute)

	sess := store.Create(testCriteria())
	require.NotEmpty(t, sess.ID)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseOutbound, got.Phase())

	_, err = store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiredSessionsAreInvisible(t *testing.T) {
	store := NewStore(time.Nanosecond)

	sess := store.Create(testCriteria())
	time.Sleep(time.Millisecond)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The next create sweeps the dead entry out of the map.
	store.Create(testCriteria())
	assert.Equal(t, 1, store.Len())
}

func TestFindItinerary(t *testing.T) {
	store := NewStore(time.Minute)
	sess := store.Create(testCriteria())

	it, err := sess.Pick(models.Flight{ID: 4, Origin: "Lima", Destination: "Santiago"})
	require.NoError(t, err)
	require.NotNil(t, it)

	found, err := store.FindItinerary(it.ID)
	require.NoError(t, err)
	assert.Equal(t, it.ID, found.ID)

	_, err = store.FindItinerary("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentPicksFinalizeOnce(t *testing.T) {
	store := NewStore(time.Minute)
	sess := store.Create(testCriteria())
	flight := models.Flight{ID: 4, Origin: "Lima", Destination: "Santiago"}

	const picks = 8
	itineraries := make(chan *models.Itinerary, picks)
	errs := make(chan error, picks)

	var wg sync.WaitGroup
	for i := 0; i < picks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := store.Get(sess.ID)
			if err != nil {
				errs <- err
				return
			}
			it, err := got.Pick(flight)
			if err != nil {
				errs <- err
				return
			}
			itineraries <- it
		}()
	}
	wg.Wait()
	close(itineraries)
	close(errs)

	// A one-way search finalizes on the first pick; every other racer must
	// observe the completed machine, not a torn phase.
	require.Len(t, itineraries, 1)
	for err := range errs {
		assert.ErrorIs(t, err, selection.ErrSelectionComplete)
	}
	assert.Equal(t, models.PhaseComplete, sess.Phase())
	require.NotNil(t, sess.Itinerary())
}
