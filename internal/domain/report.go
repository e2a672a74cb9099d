package domain

// FlightEntry - классифицированный рейс в отчёте
type FlightEntry struct {
	Callsign        string          `json:"callsign"`
	ICAO24          string          `json:"icao24,omitempty"`
	Type            FlightDirection `json:"type"`
	FromICAO        string          `json:"from_icao"`
	ToICAO          string          `json:"to_icao"`
	CounterpartICAO string          `json:"-"`
	DurationMinutes int             `json:"duration_min"`
	Source          FlightSource    `json:"source"`
}

// ReportStatistics считается по собранному списку рейсов
type ReportStatistics struct {
	TotalFlights          int `json:"total_flights"`
	TotalAirportsInRadius int `json:"total_airports_in_radius"`
	Departures            int `json:"departures"`
	Arrivals              int `json:"arrivals"`
}

// FlightActivityReport - отчёт об активности рейсов вокруг аэропорта.
// В одном отчёте рейсы либо все из базы, либо все синтетические.
type FlightActivityReport struct {
	CenterAirport    *Airport
	RadiusKm         float64
	AirportsInRadius []RadiusResult
	Flights          []FlightEntry
	Statistics       ReportStatistics
}

// ComputeStatistics пересчитывает статистику по текущему списку рейсов
func (r *FlightActivityReport) ComputeStatistics() {
	stats := ReportStatistics{
		TotalFlights:          len(r.Flights),
		TotalAirportsInRadius: len(r.AirportsInRadius),
	}
	for _, f := range r.Flights {
		switch f.Type {
		case DirectionDeparture:
			stats.Departures++
		case DirectionArrival:
			stats.Arrivals++
		}
	}
	r.Statistics = stats
}

// IsMock - true, если отчёт содержит синтетические рейсы
func (r *FlightActivityReport) IsMock() bool {
	return len(r.Flights) > 0 && r.Flights[0].Source == SourceMock
}
