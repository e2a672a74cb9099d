package domain

import "strings"

// Airport - запись аэропорта. Код ICAO уникален и хранится в верхнем регистре.
type Airport struct {
	ICAO      string  `json:"icao" db:"icao_code"`
	IATA      string  `json:"iata,omitempty" db:"iata_code"`
	Name      string  `json:"name" db:"name"`
	City      string  `json:"city" db:"city"`
	Country   string  `json:"country" db:"country"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Coordinate возвращает координаты аэропорта
func (a *Airport) Coordinate() Coordinate {
	return Coordinate{Lat: a.Latitude, Lon: a.Longitude}
}

// NormalizeCode приводит код аэропорта к каноническому виду
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PlaceholderAirport создаётся импортом для неизвестных аэропортов
func PlaceholderAirport(code string) *Airport {
	code = NormalizeCode(code)
	return &Airport{
		ICAO:    code,
		Name:    "Airport " + code,
		City:    "Unknown",
		Country: "Unknown",
	}
}

// RadiusResult - аэропорт в радиусе и расстояние до центра, км (2 знака)
type RadiusResult struct {
	Airport    *Airport `json:"airport"`
	DistanceKm float64  `json:"distance_km"`
}
