package repository

import (
	"context"

	"github.com/airport-tracker/internal/domain"
)

// AirportRepository определяет методы для работы с аэропортами
type AirportRepository interface {
	// GetByCode возвращает аэропорт по ICAO коду (без учёта регистра), ErrAirportNotFound если нет
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)

	// ListAll возвращает все аэропорты
	ListAll(ctx context.Context) ([]*domain.Airport, error)

	// GetByCodes возвращает найденные аэропорты по списку кодов
	GetByCodes(ctx context.Context, codes []string) ([]*domain.Airport, error)

	// Search ищет аэропорты по коду, названию или городу
	Search(ctx context.Context, query string, limit int) ([]*domain.Airport, error)

	// EnsurePlaceholder создаёт запись-заглушку, если аэропорта ещё нет
	EnsurePlaceholder(ctx context.Context, code string) error
}
