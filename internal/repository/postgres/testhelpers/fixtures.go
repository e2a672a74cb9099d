package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/airport-tracker/internal/domain"
)

// Airports - набор аэропортов Московского региона и Санкт-Петербурга
var Airports = []domain.Airport{
	{ICAO: "UUEE", IATA: "SVO", Name: "Sheremetyevo", City: "Moscow", Country: "Russia", Latitude: 55.9726, Longitude: 37.4146},
	{ICAO: "UUDD", IATA: "DME", Name: "Domodedovo", City: "Moscow", Country: "Russia", Latitude: 55.4088, Longitude: 37.9063},
	{ICAO: "UUWW", IATA: "VKO", Name: "Vnukovo", City: "Moscow", Country: "Russia", Latitude: 55.5915, Longitude: 37.2615},
	{ICAO: "ULLI", IATA: "LED", Name: "Pulkovo", City: "Saint Petersburg", Country: "Russia", Latitude: 59.8003, Longitude: 30.2625},
}

// LoadAirports вставляет аэропорты фикстуры
func LoadAirports(ctx context.Context, db *sqlx.DB, airports []domain.Airport) error {
	query := `
		INSERT INTO airports (icao_code, iata_code, name, city, country, latitude, longitude)
		VALUES (:icao_code, :iata_code, :name, :city, :country, :latitude, :longitude)
		ON CONFLICT (icao_code) DO NOTHING
	`
	for _, a := range airports {
		if _, err := db.NamedExecContext(ctx, query, a); err != nil {
			return fmt.Errorf("load airport %s: %w", a.ICAO, err)
		}
	}
	return nil
}

// InsertFlight вставляет рейс напрямую, минуя репозиторий
func InsertFlight(ctx context.Context, db *sqlx.DB, callsign, from, to string, firstSeen time.Time, durationMin int) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO flights (callsign, icao24, departure_icao, arrival_icao, first_seen, last_seen, duration_minutes)
		VALUES ($1, '', $2, $3, $4, $5, $6)
	`, callsign, from, to, firstSeen, firstSeen.Add(time.Duration(durationMin)*time.Minute), durationMin)
	if err != nil {
		return fmt.Errorf("insert flight %s: %w", callsign, err)
	}
	return nil
}
