package dto

import "github.com/airport-tracker/internal/domain"

// AirportDTO - аэропорт в ответе API
type AirportDTO struct {
	ICAO      string  `json:"icao"`
	IATA      string  `json:"iata,omitempty"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AirportInRadiusDTO - аэропорт в радиусе с расстоянием до центра
type AirportInRadiusDTO struct {
	AirportDTO
	DistanceKm float64 `json:"distance_km"`
}

// FlightDTO - рейс в отчёте
type FlightDTO struct {
	Callsign    string `json:"callsign"`
	ICAO24      string `json:"icao24,omitempty"`
	Type        string `json:"type"`
	FromICAO    string `json:"from_icao"`
	ToICAO      string `json:"to_icao"`
	DurationMin int    `json:"duration_min"`
	Source      string `json:"source"`
}

// StatisticsDTO - сводка по отчёту
type StatisticsDTO struct {
	TotalFlights          int `json:"total_flights"`
	TotalAirportsInRadius int `json:"total_airports_in_radius"`
	Departures            int `json:"departures"`
	Arrivals              int `json:"arrivals"`
}

// FlightReportResponse - ответ с отчётом об активности рейсов
type FlightReportResponse struct {
	Success          bool                 `json:"success"`
	CenterAirport    AirportDTO           `json:"center_airport"`
	RadiusKm         float64              `json:"radius_km"`
	AirportsInRadius []AirportInRadiusDTO `json:"airports_in_radius"`
	Flights          []FlightDTO          `json:"flights"`
	Statistics       StatisticsDTO        `json:"statistics"`
}

// AirportRadiusResponse - центр и аэропорты в радиусе
type AirportRadiusResponse struct {
	CenterAirport    AirportDTO           `json:"center_airport"`
	RadiusKm         float64              `json:"radius_km"`
	AirportsInRadius []AirportInRadiusDTO `json:"airports_in_radius"`
	Total            int                  `json:"total"`
}

// AutocompleteItem - подсказка автодополнения
type AutocompleteItem struct {
	ICAO    string `json:"icao"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Label   string `json:"label"`
}

// ImportAcceptedResponse - запрос на импорт поставлен в очередь
type ImportAcceptedResponse struct {
	RequestID string `json:"request_id"`
	ICAO      string `json:"icao"`
}

func NewAirportDTO(a *domain.Airport) AirportDTO {
	if a == nil {
		return AirportDTO{}
	}
	return AirportDTO{
		ICAO:      a.ICAO,
		IATA:      a.IATA,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

func NewAirportsInRadius(results []domain.RadiusResult) []AirportInRadiusDTO {
	out := make([]AirportInRadiusDTO, 0, len(results))
	for _, r := range results {
		out = append(out, AirportInRadiusDTO{
			AirportDTO: NewAirportDTO(r.Airport),
			DistanceKm: r.DistanceKm,
		})
	}
	return out
}

// NewFlightReportResponse преобразует доменный отчёт в ответ API
func NewFlightReportResponse(r *domain.FlightActivityReport) *FlightReportResponse {
	flights := make([]FlightDTO, 0, len(r.Flights))
	for _, f := range r.Flights {
		flights = append(flights, FlightDTO{
			Callsign:    f.Callsign,
			ICAO24:      f.ICAO24,
			Type:        string(f.Type),
			FromICAO:    f.FromICAO,
			ToICAO:      f.ToICAO,
			DurationMin: f.DurationMinutes,
			Source:      string(f.Source),
		})
	}

	return &FlightReportResponse{
		Success:          true,
		CenterAirport:    NewAirportDTO(r.CenterAirport),
		RadiusKm:         r.RadiusKm,
		AirportsInRadius: NewAirportsInRadius(r.AirportsInRadius),
		Flights:          flights,
		Statistics: StatisticsDTO{
			TotalFlights:          r.Statistics.TotalFlights,
			TotalAirportsInRadius: r.Statistics.TotalAirportsInRadius,
			Departures:            r.Statistics.Departures,
			Arrivals:              r.Statistics.Arrivals,
		},
	}
}

// NewAutocompleteItems формирует подсказки вида "UUEE - Sheremetyevo (Moscow)"
func NewAutocompleteItems(airports []*domain.Airport) []AutocompleteItem {
	items := make([]AutocompleteItem, 0, len(airports))
	for _, a := range airports {
		items = append(items, AutocompleteItem{
			ICAO:    a.ICAO,
			Name:    a.Name,
			City:    a.City,
			Country: a.Country,
			Label:   a.ICAO + " - " + a.Name + " (" + a.City + ")",
		})
	}
	return items
}
