package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mvalderrama/flightfunnel/internal/cache"
	"github.com/mvalderrama/flightfunnel/internal/engine"
	"github.com/mvalderrama/flightfunnel/internal/inventory"
	"github.com/mvalderrama/flightfunnel/internal/models"
	"github.com/mvalderrama/flightfunnel/internal/selection"
	"github.com/mvalderrama/flightfunnel/internal/session"
	"github.com/mvalderrama/flightfunnel/pkg/logger"
	"github.com/mvalderrama/flightfunnel/pkg/metrics"
)

type SearchHandler struct {
	store    *inventory.Store
	sessions *session.Store
	cache    cache.Cache
	metrics  *metrics.Metrics
	log      logger.Logger
}

func NewSearchHandler(store *inventory.Store, sessions *session.Store, c cache.Cache, m *metrics.Metrics, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		store:    store,
		sessions: sessions,
		cache:    c,
		metrics:  m,
		log:      log,
	}
}

// Search starts a new selection session: validates the submitted criteria and
// returns the outbound-phase candidate list.
func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()

	var criteria models.SearchCriteria
	if err := c.Bind(&criteria); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := criteria.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	sess := h.sessions.Create(criteria)
	h.metrics.SearchesTotal.Inc()

	result, cacheHit := h.runFilter(c, sess.Criteria(), models.PhaseOutbound, nil)

	h.log.Info("search submitted",
		"session_id", sess.ID,
		"origin", criteria.Origin,
		"destination", criteria.Destination,
		"trip_type", criteria.TripType,
		"results", len(result.Flights),
	)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SessionID: sess.ID,
		Phase:     sess.Phase(),
		Criteria:  sess.Criteria(),
		Metadata:  h.buildMetadata(result, models.PhaseOutbound, startTime, cacheHit),
		Flights:   result.Flights,
	})
}

type selectRequest struct {
	SessionID string `json:"session_id"`
	FlightID  int    `json:"flight_id"`
}

// Select applies one flight pick to the session's machine. While the machine
// is still selecting it responds with the next phase's candidates; once
// complete it responds with the finalized itinerary.
func (h *SearchHandler) Select(c echo.Context) error {
	startTime := time.Now()

	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	sess, err := h.sessions.Get(req.SessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "session_not_found",
			Message: "Unknown or expired session: " + req.SessionID,
			Code:    http.StatusNotFound,
		})
	}

	flight, ok := h.store.ByID(req.FlightID)
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "flight_not_found",
			Message: "No flight with the given id in the inventory",
			Code:    http.StatusNotFound,
		})
	}

	it, err := sess.Pick(flight)
	if err != nil {
		status := http.StatusConflict
		errCode := "selection_complete"
		if errors.Is(err, selection.ErrInvalidSelectionState) {
			errCode = "invalid_selection_state"
		}
		return c.JSON(status, models.ErrorResponse{
			Error:   errCode,
			Message: err.Error(),
			Code:    status,
		})
	}

	h.metrics.SelectionsTotal.Inc()

	if it != nil {
		h.log.Info("itinerary finalized",
			"session_id", sess.ID,
			"itinerary_id", it.ID,
			"outbound_id", it.OutboundFlight.ID,
			"round_trip", it.ReturnFlight != nil,
		)
		return c.JSON(http.StatusOK, models.SelectResponse{
			SessionID: sess.ID,
			Phase:     sess.Phase(),
			Itinerary: it,
		})
	}

	phase := sess.Phase()
	result, cacheHit := h.runFilter(c, sess.Criteria(), phase, sess.ChosenOutbound())

	return c.JSON(http.StatusOK, models.SelectResponse{
		SessionID: sess.ID,
		Phase:     phase,
		Metadata:  h.buildMetadata(result, phase, startTime, cacheHit),
		Flights:   result.Flights,
	})
}

// Routes exposes the distinct origins and destinations of the inventory,
// with the sentinel first so the form can offer an "any" choice.
func (h *SearchHandler) Routes(c echo.Context) error {
	return c.JSON(http.StatusOK, models.RoutesResponse{
		Origins:      append([]string{models.AnyLocation}, h.store.Origins()...),
		Destinations: append([]string{models.AnyLocation}, h.store.Destinations()...),
	})
}

func (h *SearchHandler) runFilter(c echo.Context, criteria models.SearchCriteria, phase models.Phase, chosenOutbound *models.Flight) (engine.Result, bool) {
	ctx := c.Request().Context()

	if cached, found := h.cache.Get(ctx, criteria, phase, chosenOutbound); found {
		return cached, true
	}

	filterStart := time.Now()
	result := engine.Filter(h.store.All(), criteria, phase, chosenOutbound)
	h.metrics.FilterDuration.Observe(time.Since(filterStart).Seconds())

	if reason := result.Reason(); reason != models.ReasonNone {
		h.metrics.EmptyResults.WithLabelValues(string(reason)).Inc()
	}

	if err := h.cache.Set(ctx, criteria, phase, chosenOutbound, result); err != nil {
		h.log.Warn("cache write failed", "error", err)
	}

	return result, false
}

func (h *SearchHandler) buildMetadata(result engine.Result, phase models.Phase, startTime time.Time, cacheHit bool) models.SearchMetadata {
	reason := result.Reason()
	return models.SearchMetadata{
		TotalResults: len(result.Flights),
		SearchTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:     cacheHit,
		EmptyReason:  reason,
		EmptyMessage: emptyMessage(phase, reason),
	}
}

// emptyMessage renders the user-facing explanation for an empty candidate
// list. The gap violation wins over day ineligibility, and both win over the
// generic message.
func emptyMessage(phase models.Phase, reason models.EmptyReason) string {
	if reason == models.ReasonNone {
		return ""
	}

	if phase == models.PhaseReturn {
		switch reason {
		case models.ReasonNoValidReturnAfter:
			return "No hay vuelos de vuelta disponibles al menos 2 horas después de la hora de tu vuelo de ida. Prueba cambiando la fecha de regreso o el horario de salida."
		case models.ReasonNoFlightsForDay:
			return "No hay vuelos de vuelta operando el día seleccionado. Prueba cambiando la fecha de regreso."
		default:
			return "No se encontraron vuelos de vuelta con los criterios seleccionados."
		}
	}

	if reason == models.ReasonNoFlightsForDay {
		return "No hay vuelos de ida operando el día seleccionado. Prueba cambiando la fecha de salida."
	}
	return "No se encontraron vuelos de ida con los criterios seleccionados."
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
