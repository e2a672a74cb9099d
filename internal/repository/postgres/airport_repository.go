package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const airportColumns = `icao_code, iata_code, name, city, country, latitude, longitude`

type airportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAirportRepository(db *DB) repository.AirportRepository {
	return &airportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *airportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	query := `SELECT ` + airportColumns + ` FROM airports WHERE icao_code = $1`

	var airport domain.Airport
	err := r.db.GetContext(ctx, &airport, query, domain.NormalizeCode(code))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrAirportNotFound
		}
		r.logger.Error("Failed to get airport", zap.String("icao", code), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return &airport, nil
}

func (r *airportRepository) ListAll(ctx context.Context) ([]*domain.Airport, error) {
	query := `SELECT ` + airportColumns + ` FROM airports ORDER BY icao_code`

	airports := []*domain.Airport{}
	if err := r.db.SelectContext(ctx, &airports, query); err != nil {
		r.logger.Error("Failed to list airports", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return airports, nil
}

func (r *airportRepository) GetByCodes(ctx context.Context, codes []string) ([]*domain.Airport, error) {
	airports := []*domain.Airport{}
	if len(codes) == 0 {
		return airports, nil
	}

	normalized := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = domain.NormalizeCode(c); c != "" {
			normalized = append(normalized, c)
		}
	}

	query := `SELECT ` + airportColumns + ` FROM airports WHERE icao_code = ANY($1) ORDER BY icao_code`
	if err := r.db.SelectContext(ctx, &airports, query, pq.Array(normalized)); err != nil {
		r.logger.Error("Failed to get airports by codes", zap.Int("count", len(normalized)), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return airports, nil
}

// Search: сначала точные совпадения кода, затем по началу кода, затем по названию
func (r *airportRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Airport, error) {
	q := strings.TrimSpace(query)
	prefix := escapeLike(strings.ToUpper(q)) + "%"
	contains := "%" + escapeLike(q) + "%"

	sqlQuery := `
		SELECT ` + airportColumns + `
		FROM airports
		WHERE icao_code LIKE $1
		   OR iata_code LIKE $1
		   OR name ILIKE $2
		   OR city ILIKE $2
		ORDER BY
			CASE
				WHEN icao_code = $3 OR iata_code = $3 THEN 0
				WHEN icao_code LIKE $1 OR iata_code LIKE $1 THEN 1
				ELSE 2
			END,
			name
		LIMIT $4
	`

	airports := []*domain.Airport{}
	if err := r.db.SelectContext(ctx, &airports, sqlQuery, prefix, contains, strings.ToUpper(q), limit); err != nil {
		r.logger.Error("Failed to search airports", zap.String("query", q), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return airports, nil
}

func (r *airportRepository) EnsurePlaceholder(ctx context.Context, code string) error {
	p := domain.PlaceholderAirport(code)
	if p.ICAO == "" {
		return errors.ErrInvalidAirportCode
	}

	query := `
		INSERT INTO airports (icao_code, name, city, country, latitude, longitude)
		VALUES (:icao_code, :name, :city, :country, :latitude, :longitude)
		ON CONFLICT (icao_code) DO NOTHING
	`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		r.logger.Error("Failed to ensure airport", zap.String("icao", p.ICAO), zap.Error(err))
		return errors.ErrDatabaseError.Wrap(err)
	}

	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
