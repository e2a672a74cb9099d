package repository

import (
	"context"

	"github.com/airport-tracker/internal/domain"
)

// FlightProvider - внешний источник данных о рейсах.
// Реализация сама отвечает за кэширование и таймауты.
type FlightProvider interface {
	FetchRecent(ctx context.Context, code string, lookbackHours int) (*domain.ProviderFlights, error)
}
