package inventory

import "github.com/mvalderrama/flightfunnel/internal/models"

var everyDay = []int{0, 1, 2, 3, 4, 5, 6}

// Seed returns the built-in demo inventory: five city pairs out of Lima, each
// with its mechanical inverse so round trips always have return candidates.
func Seed() []models.Flight {
	return []models.Flight{
		// Lima -> Cusco
		{ID: 1, Origin: "Lima", Destination: "Cusco", Airline: "LATAM", DepartureTime: "08:10", ArrivalTime: "09:35", Duration: "1h 25m", Price: 289, Currency: "PEN", Stops: "Directo", Fare: "Light", DaysOfWeek: everyDay},
		{ID: 2, Origin: "Lima", Destination: "Cusco", Airline: "Sky Airline", DepartureTime: "06:30", ArrivalTime: "07:55", Duration: "1h 25m", Price: 230, Currency: "PEN", Stops: "Directo", Fare: "Promo", DaysOfWeek: []int{1, 3, 5}},
		{ID: 3, Origin: "Lima", Destination: "Cusco", Airline: "JetSMART", DepartureTime: "19:10", ArrivalTime: "20:40", Duration: "1h 30m", Price: 310, Currency: "PEN", Stops: "Directo", Fare: "Plus", DaysOfWeek: []int{2, 4, 6}},

		// Cusco -> Lima
		{ID: 10, Origin: "Cusco", Destination: "Lima", Airline: "LATAM", DepartureTime: "10:30", ArrivalTime: "11:55", Duration: "1h 25m", Price: 295, Currency: "PEN", Stops: "Directo", Fare: "Light", DaysOfWeek: everyDay},
		{ID: 11, Origin: "Cusco", Destination: "Lima", Airline: "Sky Airline", DepartureTime: "14:15", ArrivalTime: "15:40", Duration: "1h 25m", Price: 240, Currency: "PEN", Stops: "Directo", Fare: "Promo", DaysOfWeek: []int{1, 3, 5}},
		{ID: 12, Origin: "Cusco", Destination: "Lima", Airline: "JetSMART", DepartureTime: "21:10", ArrivalTime: "22:40", Duration: "1h 30m", Price: 320, Currency: "PEN", Stops: "Directo", Fare: "Plus", DaysOfWeek: []int{2, 4, 6}},

		// Lima -> Santiago
		{ID: 4, Origin: "Lima", Destination: "Santiago", Airline: "LATAM", DepartureTime: "10:45", ArrivalTime: "15:20", Duration: "3h 35m", Price: 820, Currency: "PEN", Stops: "Directo", Fare: "Light", DaysOfWeek: everyDay},
		{ID: 5, Origin: "Lima", Destination: "Santiago", Airline: "Sky Airline", DepartureTime: "23:50", ArrivalTime: "04:15", Duration: "3h 25m", Price: 690, Currency: "PEN", Stops: "Directo", Fare: "Promo", DaysOfWeek: []int{1, 3, 5}},

		// Santiago -> Lima
		{ID: 13, Origin: "Santiago", Destination: "Lima", Airline: "LATAM", DepartureTime: "08:00", ArrivalTime: "10:35", Duration: "3h 35m", Price: 830, Currency: "PEN", Stops: "Directo", Fare: "Light", DaysOfWeek: everyDay},
		{ID: 14, Origin: "Santiago", Destination: "Lima", Airline: "Sky Airline", DepartureTime: "18:20", ArrivalTime: "21:45", Duration: "3h 25m", Price: 700, Currency: "PEN", Stops: "Directo", Fare: "Promo", DaysOfWeek: []int{1, 3, 5}},

		// Lima -> Bogota
		{ID: 6, Origin: "Lima", Destination: "Bogotá", Airline: "Avianca", DepartureTime: "09:00", ArrivalTime: "12:40", Duration: "3h 40m", Price: 950, Currency: "PEN", Stops: "Directo", Fare: "Económica", DaysOfWeek: everyDay},
		{ID: 7, Origin: "Lima", Destination: "Bogotá", Airline: "Copa Airlines", DepartureTime: "02:20", ArrivalTime: "08:10", Duration: "5h 50m", Price: 780, Currency: "PEN", Stops: "1 escala", Fare: "Promo", DaysOfWeek: everyDay},

		// Bogota -> Lima
		{ID: 15, Origin: "Bogotá", Destination: "Lima", Airline: "Avianca", DepartureTime: "13:30", ArrivalTime: "17:10", Duration: "3h 40m", Price: 960, Currency: "PEN", Stops: "Directo", Fare: "Económica", DaysOfWeek: everyDay},
		{ID: 16, Origin: "Bogotá", Destination: "Lima", Airline: "Copa Airlines", DepartureTime: "19:00", ArrivalTime: "00:50", Duration: "5h 50m", Price: 790, Currency: "PEN", Stops: "1 escala", Fare: "Promo", DaysOfWeek: everyDay},

		// Lima -> Mexico DF
		{ID: 8, Origin: "Lima", Destination: "Mexico DF", Airline: "Aeroméxico", DepartureTime: "01:00", ArrivalTime: "07:30", Duration: "6h 30m", Price: 1350, Currency: "PEN", Stops: "Directo", Fare: "Económica", DaysOfWeek: everyDay},
		{ID: 9, Origin: "Lima", Destination: "Mexico DF", Airline: "LATAM", DepartureTime: "18:15", ArrivalTime: "01:10", Duration: "6h 55m", Price: 1480, Currency: "PEN", Stops: "Directo", Fare: "Light", DaysOfWeek: everyDay},

		// Mexico DF -> Lima
		{ID: 17, Origin: "Mexico DF", Destination: "Lima", Airline: "Aeroméxico", DepartureTime: "09:00", ArrivalTime: "15:30", Duration: "6h 30m", Price: 1360, Currency: "PEN", Stops: "Directo", Fare: "Económica", DaysOfWeek: everyDay},
		{ID: 18, Origin: "Mexico DF", Destination: "Lima", Airline: "LATAM", DepartureTime: "23:10", ArrivalTime: "05:55", Duration: "6h 45m", Price: 1490, Currency: "PEN", Stops: "Directo", Fare: "Light", DaysOfWeek: everyDay},
	}
}
