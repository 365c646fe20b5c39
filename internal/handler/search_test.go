package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/flightfunnel/internal/cache"
	"github.com/mvalderrama/flightfunnel/internal/inventory"
	"github.com/mvalderrama/flightfunnel/internal/models"
	"github.com/mvalderrama/flightfunnel/internal/session"
	"github.com/mvalderrama/flightfunnel/pkg/logger"
	"github.com/mvalderrama/flightfunnel/pkg/metrics"
)

// Shared across tests: promauto registers on the default registry, so the
// instruments can only be created once per process.
var testMetrics = metrics.NewMetrics("flightfunnel_test")

type testEnv struct {
	echo     *echo.Echo
	search   *SearchHandler
	checkout *CheckoutHandler
	sessions *session.Store
}

func newTestEnv() *testEnv {
	log := logger.NewLogger()
	store := inventory.NewStore(inventory.Seed())
	sessions := session.NewStore(time.Minute)

	return &testEnv{
		echo:     echo.New(),
		search:   NewSearchHandler(store, sessions, cache.NewNoOpCache(), testMetrics, log),
		checkout: NewCheckoutHandler(sessions, testMetrics, log),
		sessions: sessions,
	}
}

func (env *testEnv) post(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(env.echo.NewContext(req, rec)))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

const mondayDate = "2025-12-01"

func TestSearchRejectsInvalidCriteria(t *testing.T) {
	env := newTestEnv()

	rec := env.post(t, env.search.Search, `{"origin":"Lima","destination":"Lima","trip_type":"oneWay","depart_date":"2025-12-01"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[models.ErrorResponse](t, rec)
	assert.Equal(t, "validation_error", resp.Error)
}

func TestSearchReturnsOutboundCandidates(t *testing.T) {
	env := newTestEnv()

	rec := env.post(t, env.search.Search, fmt.Sprintf(
		`{"origin":"Lima","destination":"Cusco","trip_type":"oneWay","depart_date":%q}`, mondayDate))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.SearchResponse](t, rec)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, models.PhaseOutbound, resp.Phase)
	assert.Len(t, resp.Flights, 2)
	assert.Equal(t, 2, resp.Metadata.TotalResults)
	assert.Empty(t, resp.Metadata.EmptyReason)
}

func TestSearchEmptyDayMessage(t *testing.T) {
	env := newTestEnv()

	// Cusco -> Santiago is not in the inventory at all.
	rec := env.post(t, env.search.Search, fmt.Sprintf(
		`{"origin":"Cusco","destination":"Santiago","trip_type":"oneWay","depart_date":%q}`, mondayDate))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.SearchResponse](t, rec)

	assert.Empty(t, resp.Flights)
	assert.Equal(t, models.ReasonNoMatches, resp.Metadata.EmptyReason)
	assert.Contains(t, resp.Metadata.EmptyMessage, "vuelos de ida")
}

func TestSelectUnknownSession(t *testing.T) {
	env := newTestEnv()

	rec := env.post(t, env.search.Select, `{"session_id":"nope","flight_id":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode[models.ErrorResponse](t, rec)
	assert.Equal(t, "session_not_found", resp.Error)
}

func TestRoundTripFunnelEndToEnd(t *testing.T) {
	env := newTestEnv()

	// Same-day round trip, so the minimum-gap rule is live for the return leg.
	rec := env.post(t, env.search.Search, fmt.Sprintf(
		`{"origin":"Lima","destination":"Cusco","trip_type":"roundTrip","depart_date":%q,"return_date":%q,"num_passengers":1}`,
		mondayDate, mondayDate))
	require.Equal(t, http.StatusOK, rec.Code)
	searchResp := decode[models.SearchResponse](t, rec)
	require.NotEmpty(t, searchResp.Flights)

	// Pick the 08:10 outbound; both Monday return flights leave 2h+ later.
	rec = env.post(t, env.search.Select, fmt.Sprintf(
		`{"session_id":%q,"flight_id":1}`, searchResp.SessionID))
	require.Equal(t, http.StatusOK, rec.Code)
	selectResp := decode[models.SelectResponse](t, rec)

	assert.Equal(t, models.PhaseReturn, selectResp.Phase)
	assert.Nil(t, selectResp.Itinerary)
	require.NotEmpty(t, selectResp.Flights)
	for _, f := range selectResp.Flights {
		assert.Equal(t, "Cusco", f.Origin)
		assert.Equal(t, "Lima", f.Destination)
	}

	// Pick the return leg; the itinerary is finalized.
	rec = env.post(t, env.search.Select, fmt.Sprintf(
		`{"session_id":%q,"flight_id":10}`, searchResp.SessionID))
	require.Equal(t, http.StatusOK, rec.Code)
	finalResp := decode[models.SelectResponse](t, rec)

	assert.Equal(t, models.PhaseComplete, finalResp.Phase)
	require.NotNil(t, finalResp.Itinerary)
	assert.Equal(t, 1, finalResp.Itinerary.OutboundFlight.ID)
	require.NotNil(t, finalResp.Itinerary.ReturnFlight)
	assert.Equal(t, 10, finalResp.Itinerary.ReturnFlight.ID)

	// A third pick is rejected.
	rec = env.post(t, env.search.Select, fmt.Sprintf(
		`{"session_id":%q,"flight_id":11}`, searchResp.SessionID))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Quote and confirm the finalized itinerary.
	itineraryID := finalResp.Itinerary.ID
	rec = env.post(t, env.checkout.Quote, fmt.Sprintf(
		`{"itinerary_id":%q,"extras":{"outbound":{"baggage":"mano"},"return":{"fare":"clasica"}}}`, itineraryID))
	require.Equal(t, http.StatusOK, rec.Code)
	quote := decode[quoteResponse](t, rec)
	assert.Equal(t, 289.0+295.0, quote.Totals.BaseTotal)
	assert.Equal(t, 130.0, quote.Totals.ExtrasTotal)

	rec = env.post(t, env.checkout.Confirm, fmt.Sprintf(
		`{"itinerary_id":%q,"passengers":[{"full_name":"María López","doc_type":"DNI","document":"12345678","seat":"1A"}],"contact":{"name":"María López","email":"maria@example.com","phone":"+51987654321"}}`,
		itineraryID))
	require.Equal(t, http.StatusOK, rec.Code)
	confirm := decode[confirmResponse](t, rec)
	assert.Regexp(t, `^[A-Z0-9]{6}$`, confirm.BookingCode)
	assert.Equal(t, itineraryID, confirm.Itinerary.ID)
}

func TestOneWayFunnelCompletesAfterOnePick(t *testing.T) {
	env := newTestEnv()

	rec := env.post(t, env.search.Search, fmt.Sprintf(
		`{"origin":"Lima","destination":"Santiago","trip_type":"oneWay","depart_date":%q}`, mondayDate))
	require.Equal(t, http.StatusOK, rec.Code)
	searchResp := decode[models.SearchResponse](t, rec)

	rec = env.post(t, env.search.Select, fmt.Sprintf(
		`{"session_id":%q,"flight_id":4}`, searchResp.SessionID))
	require.Equal(t, http.StatusOK, rec.Code)
	selectResp := decode[models.SelectResponse](t, rec)

	assert.Equal(t, models.PhaseComplete, selectResp.Phase)
	require.NotNil(t, selectResp.Itinerary)
	assert.Nil(t, selectResp.Itinerary.ReturnFlight)
}

func TestConfirmPassengerCountMismatch(t *testing.T) {
	env := newTestEnv()

	sess := env.sessions.Create(models.SearchCriteria{
		Origin: "Lima", Destination: "Santiago",
		TripType: models.TripOneWay, DepartDate: mondayDate, NumPassengers: 2,
	})
	it, err := sess.Pick(models.Flight{ID: 4, Origin: "Lima", Destination: "Santiago", Price: 820})
	require.NoError(t, err)

	rec := env.post(t, env.checkout.Confirm, fmt.Sprintf(
		`{"itinerary_id":%q,"passengers":[{"full_name":"Ana","doc_type":"DNI","document":"12345678","seat":"1A"}],"contact":{"name":"Ana","email":"ana@example.com","phone":"+51987654321"}}`,
		it.ID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[models.ErrorResponse](t, rec)
	assert.Equal(t, "passenger_count_mismatch", resp.Error)
}

func TestEmptyMessagePrecedence(t *testing.T) {
	gap := emptyMessage(models.PhaseReturn, models.ReasonNoValidReturnAfter)
	day := emptyMessage(models.PhaseReturn, models.ReasonNoFlightsForDay)

	assert.Contains(t, gap, "2 horas")
	assert.Contains(t, day, "fecha de regreso")
	assert.Empty(t, emptyMessage(models.PhaseOutbound, models.ReasonNone))
}
