package repository

import (
	"context"

	"github.com/airport-tracker/internal/domain"
)

// FlightRepository - локальное хранилище рейсов
type FlightRepository interface {
	// FindByDeparture возвращает рейсы, вылетевшие из аэропорта
	FindByDeparture(ctx context.Context, code string) ([]*domain.FlightRecord, error)

	// FindByArrival возвращает рейсы, прилетевшие в аэропорт
	FindByArrival(ctx context.Context, code string) ([]*domain.FlightRecord, error)

	// Upsert создаёт или обновляет рейс по (callsign, icao24, departure, arrival)
	Upsert(ctx context.Context, record *domain.FlightRecord) (created bool, err error)
}
