package postgres

import (
	"context"
	"encoding/json"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const flightColumns = `id, callsign, icao24, departure_icao, arrival_icao,
	first_seen, last_seen, duration_minutes, payload`

// flightRow - строка flights; payload сканируется как []byte
type flightRow struct {
	domain.FlightRecord
	RawPayload []byte `db:"payload"`
}

type flightRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFlightRepository(db *DB) repository.FlightRepository {
	return &flightRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *flightRepository) FindByDeparture(ctx context.Context, code string) ([]*domain.FlightRecord, error) {
	return r.findBy(ctx, "departure_icao", code)
}

func (r *flightRepository) FindByArrival(ctx context.Context, code string) ([]*domain.FlightRecord, error) {
	return r.findBy(ctx, "arrival_icao", code)
}

// column - только константы из этого файла
func (r *flightRepository) findBy(ctx context.Context, column, code string) ([]*domain.FlightRecord, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE ` + column + ` = $1 ORDER BY first_seen DESC`

	var rows []flightRow
	if err := r.db.SelectContext(ctx, &rows, query, domain.NormalizeCode(code)); err != nil {
		r.logger.Error("Failed to query flights",
			zap.String("column", column),
			zap.String("icao", code),
			zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	flights := make([]*domain.FlightRecord, 0, len(rows))
	for i := range rows {
		rec := rows[i].FlightRecord
		if len(rows[i].RawPayload) > 0 {
			rec.Payload = json.RawMessage(rows[i].RawPayload)
		}
		flights = append(flights, &rec)
	}

	return flights, nil
}

// Upsert возвращает true, если запись создана, и false, если обновлена существующая
func (r *flightRepository) Upsert(ctx context.Context, record *domain.FlightRecord) (bool, error) {
	query := `
		INSERT INTO flights (
			callsign, icao24, departure_icao, arrival_icao,
			first_seen, last_seen, duration_minutes, payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (callsign, icao24, departure_icao, arrival_icao) DO UPDATE SET
			first_seen       = EXCLUDED.first_seen,
			last_seen        = EXCLUDED.last_seen,
			duration_minutes = EXCLUDED.duration_minutes,
			payload          = COALESCE(EXCLUDED.payload, flights.payload),
			updated_at       = NOW()
		RETURNING id, (xmax = 0) AS created
	`

	var payload interface{}
	if len(record.Payload) > 0 {
		payload = []byte(record.Payload)
	}

	var created bool
	err := r.db.QueryRowxContext(ctx, query,
		record.Callsign,
		record.ICAO24,
		domain.NormalizeCode(record.DepartureICAO),
		domain.NormalizeCode(record.ArrivalICAO),
		record.FirstSeen,
		record.LastSeen,
		max(record.DurationMinutes, 0),
		payload,
	).Scan(&record.ID, &created)
	if err != nil {
		r.logger.Error("Failed to upsert flight",
			zap.String("callsign", record.Callsign),
			zap.String("from", record.DepartureICAO),
			zap.String("to", record.ArrivalICAO),
			zap.Error(err))
		return false, errors.ErrDatabaseError.Wrap(err)
	}

	return created, nil
}
