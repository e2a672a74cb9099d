package domain

import (
	"encoding/json"
	"time"
)

// FlightDirection - направление рейса относительно центрального аэропорта
type FlightDirection string

const (
	DirectionDeparture FlightDirection = "departure"
	DirectionArrival   FlightDirection = "arrival"
)

// FlightSource - происхождение записи в отчёте
type FlightSource string

const (
	SourceDatabase FlightSource = "database"
	SourceMock     FlightSource = "mock"
)

// FlightRecord - сохранённый рейс. Payload - исходный ответ провайдера, ядро его не разбирает.
type FlightRecord struct {
	ID              int64           `json:"id" db:"id"`
	Callsign        string          `json:"callsign" db:"callsign"`
	ICAO24          string          `json:"icao24,omitempty" db:"icao24"`
	DepartureICAO   string          `json:"departure_icao" db:"departure_icao"`
	ArrivalICAO     string          `json:"arrival_icao" db:"arrival_icao"`
	FirstSeen       time.Time       `json:"first_seen" db:"first_seen"`
	LastSeen        time.Time       `json:"last_seen" db:"last_seen"`
	DurationMinutes int             `json:"duration_minutes" db:"duration_minutes"`
	Payload         json.RawMessage `json:"payload,omitempty" db:"-"`
}

// FlightDurationMinutes - (lastSeen - firstSeen) в целых минутах, не меньше нуля
func FlightDurationMinutes(firstSeen, lastSeen time.Time) int {
	d := lastSeen.Sub(firstSeen)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

// ProviderFlight - рейс в ответе внешнего провайдера (OpenSky)
type ProviderFlight struct {
	ICAO24              string          `json:"icao24"`
	Callsign            string          `json:"callsign"`
	FirstSeen           int64           `json:"firstSeen"`
	LastSeen            int64           `json:"lastSeen"`
	EstDepartureAirport string          `json:"estDepartureAirport"`
	EstArrivalAirport   string          `json:"estArrivalAirport"`
	Raw                 json.RawMessage `json:"-"`
}

// ProviderFlights - недавняя активность аэропорта по данным провайдера
type ProviderFlights struct {
	Departures []ProviderFlight `json:"departures"`
	Arrivals   []ProviderFlight `json:"arrivals"`
}
