package models

import "time"

// Sentinel values used by the search form: they disable the corresponding
// filter instead of being matched literally.
const (
	AnyLocation = "Todos"
	AnyAirline  = "Todas"
)

type TripType string

const (
	TripOneWay    TripType = "oneWay"
	TripRoundTrip TripType = "roundTrip"
	TripMulti     TripType = "multi" // reserved, filtered like oneWay
)

type SortOrder string

const (
	OrderNone         SortOrder = "none"
	OrderPriceAsc     SortOrder = "priceAsc"
	OrderPriceDesc    SortOrder = "priceDesc"
	OrderDepartureAsc SortOrder = "departureTimeAsc"
)

// MaxTripDays bounds the distance between departure and return dates.
const MaxTripDays = 30

const dateLayout = "2006-01-02"

// SearchCriteria is the validated structured input of one search submission.
// It is replaced wholesale on every new submission, never partially mutated.
type SearchCriteria struct {
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	TripType      TripType  `json:"trip_type"`
	DepartDate    string    `json:"depart_date"`
	ReturnDate    string    `json:"return_date,omitempty"`
	MaxPrice      *float64  `json:"max_price,omitempty"`
	NumPassengers int       `json:"num_passengers"`
	TravelClass   string    `json:"travel_class,omitempty"` // display only
	Airline       string    `json:"airline,omitempty"`
	OnlyDirect    bool      `json:"only_direct,omitempty"`
	Order         SortOrder `json:"order,omitempty"`
}

// Clone returns a deep copy, detaching the MaxPrice pointer.
func (c SearchCriteria) Clone() SearchCriteria {
	out := c
	if c.MaxPrice != nil {
		price := *c.MaxPrice
		out.MaxPrice = &price
	}
	return out
}

// RoundTrip reports whether the criteria describe an outbound/return pair.
func (c SearchCriteria) RoundTrip() bool {
	return c.TripType == TripRoundTrip
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin      ValidationError = "origin is required"
	ErrMissingDestination ValidationError = "destination is required"
	ErrSameRoute          ValidationError = "origin and destination must differ"
	ErrMissingDepartDate  ValidationError = "depart_date is required"
	ErrMissingReturnDate  ValidationError = "return_date is required for round trips"
	ErrInvalidDate        ValidationError = "dates must use the YYYY-MM-DD format"
	ErrReturnBeforeDepart ValidationError = "return_date cannot be earlier than depart_date"
	ErrTripTooLong        ValidationError = "trip cannot span more than 30 days"
	ErrInvalidTripType    ValidationError = "trip_type must be oneWay, roundTrip or multi"
	ErrInvalidPassengers  ValidationError = "num_passengers must be between 1 and 9"
	ErrNegativeMaxPrice   ValidationError = "max_price cannot be negative"
	ErrInvalidOrder       ValidationError = "unknown sort order"
)

// Validate checks a submission and fills form defaults. The filtering engine
// assumes criteria have already passed through here.
func (c *SearchCriteria) Validate() error {
	if c.Origin == "" {
		return ErrMissingOrigin
	}
	if c.Destination == "" {
		return ErrMissingDestination
	}
	if c.Origin != AnyLocation && c.Origin == c.Destination {
		return ErrSameRoute
	}

	switch c.TripType {
	case TripOneWay, TripRoundTrip, TripMulti:
	case "":
		c.TripType = TripRoundTrip
	default:
		return ErrInvalidTripType
	}

	if c.DepartDate == "" {
		return ErrMissingDepartDate
	}
	depart, err := time.Parse(dateLayout, c.DepartDate)
	if err != nil {
		return ErrInvalidDate
	}

	if c.TripType == TripRoundTrip {
		if c.ReturnDate == "" {
			return ErrMissingReturnDate
		}
		ret, err := time.Parse(dateLayout, c.ReturnDate)
		if err != nil {
			return ErrInvalidDate
		}
		if ret.Before(depart) {
			return ErrReturnBeforeDepart
		}
		if ret.Sub(depart) > MaxTripDays*24*time.Hour {
			return ErrTripTooLong
		}
	}

	if c.NumPassengers == 0 {
		c.NumPassengers = 1
	}
	if c.NumPassengers < 1 || c.NumPassengers > 9 {
		return ErrInvalidPassengers
	}

	if c.MaxPrice != nil && *c.MaxPrice < 0 {
		return ErrNegativeMaxPrice
	}

	if c.Airline == "" {
		c.Airline = AnyAirline
	}

	switch c.Order {
	case OrderNone, OrderPriceAsc, OrderPriceDesc, OrderDepartureAsc:
	case "":
		c.Order = OrderNone
	default:
		return ErrInvalidOrder
	}

	return nil
}
