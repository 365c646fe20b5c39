package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mvalderrama/flightfunnel/internal/checkout"
	"github.com/mvalderrama/flightfunnel/internal/models"
	"github.com/mvalderrama/flightfunnel/internal/passenger"
	"github.com/mvalderrama/flightfunnel/internal/session"
	"github.com/mvalderrama/flightfunnel/pkg/logger"
	"github.com/mvalderrama/flightfunnel/pkg/metrics"
)

type CheckoutHandler struct {
	sessions *session.Store
	metrics  *metrics.Metrics
	log      logger.Logger
}

func NewCheckoutHandler(sessions *session.Store, m *metrics.Metrics, log logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		metrics:  m,
		log:      log,
	}
}

type quoteRequest struct {
	ItineraryID string          `json:"itinerary_id"`
	Extras      checkout.Extras `json:"extras"`
}

type quoteResponse struct {
	ItineraryID string          `json:"itinerary_id"`
	Extras      checkout.Extras `json:"extras"`
	Totals      checkout.Totals `json:"totals"`
}

// Quote prices a finalized itinerary with the chosen extras. Quoting is
// repeatable; nothing is reserved until Confirm.
func (h *CheckoutHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	it, err := h.sessions.FindItinerary(req.ItineraryID)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "itinerary_not_found",
			Message: "Unknown or expired itinerary: " + req.ItineraryID,
			Code:    http.StatusNotFound,
		})
	}

	return c.JSON(http.StatusOK, quoteResponse{
		ItineraryID: it.ID,
		Extras:      req.Extras,
		Totals:      checkout.Quote(it, req.Extras),
	})
}

type confirmRequest struct {
	ItineraryID string                `json:"itinerary_id"`
	Extras      checkout.Extras       `json:"extras"`
	Passengers  []passenger.Passenger `json:"passengers"`
	Contact     passenger.Contact     `json:"contact"`
}

type confirmResponse struct {
	BookingCode string           `json:"booking_code"`
	Itinerary   models.Itinerary `json:"itinerary"`
	Totals      checkout.Totals  `json:"totals"`
	IssuedAt    time.Time        `json:"issued_at"`
}

type passengerErrors struct {
	Message    string   `json:"message"`
	Passengers []string `json:"passengers"`
}

// Confirm validates passenger and contact data and issues the simulated
// booking code. No payment is processed.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	it, err := h.sessions.FindItinerary(req.ItineraryID)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "itinerary_not_found",
			Message: "Unknown or expired itinerary: " + req.ItineraryID,
			Code:    http.StatusNotFound,
		})
	}

	if len(req.Passengers) != it.Criteria.NumPassengers {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "passenger_count_mismatch",
			Message: "Expected one passenger entry per traveler in the search",
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Contact.Validate(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "invalid_contact",
			Message: err.Error(),
			Code:    http.StatusUnprocessableEntity,
		})
	}

	if errs, ok := passenger.ValidateAll(req.Passengers); !ok {
		details := make([]string, len(errs))
		for i, e := range errs {
			if e != nil {
				details[i] = e.Error()
			}
		}
		return c.JSON(http.StatusUnprocessableEntity, passengerErrors{
			Message:    "Revisa los datos de los pasajeros",
			Passengers: details,
		})
	}

	code := checkout.BookingCode()
	h.metrics.ConfirmationsTotal.Inc()
	h.log.Info("booking confirmed",
		"itinerary_id", it.ID,
		"booking_code", code,
		"passengers", len(req.Passengers),
	)

	return c.JSON(http.StatusOK, confirmResponse{
		BookingCode: code,
		Itinerary:   it,
		Totals:      checkout.Quote(it, req.Extras),
		IssuedAt:    time.Now().UTC(),
	})
}

// SeatsHandler lists the cabin seat map for the passenger form.
func SeatsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"seats": passenger.Seats(),
	})
}
