package testhelpers

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// PrepareSchema применяет встроенную схему и очищает таблицы
func PrepareSchema(t *testing.T, tdb *TestDB) {
	ctx := context.Background()
	if err := NewDBForTest(tdb.DB, tdb.Logger).ApplySchema(ctx); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}
	if err := tdb.Cleanup(ctx); err != nil {
		t.Fatalf("Failed to cleanup: %v", err)
	}
}

// NewAirportRepositoryForTest creates an airport repository with test database and logger
func NewAirportRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AirportRepository {
	return postgres.NewAirportRepository(NewDBForTest(db, logger))
}

// NewFlightRepositoryForTest creates a flight repository with test database and logger
func NewFlightRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.FlightRepository {
	return postgres.NewFlightRepository(NewDBForTest(db, logger))
}
