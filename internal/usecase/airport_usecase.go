package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"unicode/utf8"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/errors"
	"github.com/airport-tracker/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	autocompleteMinQuery     = 2
	autocompleteDefaultLimit = 10
	autocompleteMaxLimit     = 50
)

type AirportUseCase struct {
	airportRepo repository.AirportRepository
	logger      *zap.Logger
	maxRadiusKm float64
}

func NewAirportUseCase(
	airportRepo repository.AirportRepository,
	logger *zap.Logger,
	maxRadiusKm float64,
) *AirportUseCase {
	return &AirportUseCase{
		airportRepo: airportRepo,
		logger:      logger,
		maxRadiusKm: maxRadiusKm,
	}
}

// GetByCode возвращает аэропорт по ICAO коду
func (uc *AirportUseCase) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	code = domain.NormalizeCode(code)
	if code == "" {
		return nil, errors.ErrInvalidAirportCode
	}

	airport, err := uc.airportRepo.GetByCode(ctx, code)
	if err != nil {
		if !stderrors.Is(err, errors.ErrAirportNotFound) {
			uc.logger.Error("Failed to get airport", zap.String("icao", code), zap.Error(err))
		}
		return nil, err
	}

	return airport, nil
}

// Autocomplete ищет аэропорты по началу кода, названию или городу.
// Запрос короче 2 символов даёт пустой результат.
func (uc *AirportUseCase) Autocomplete(ctx context.Context, query string, limit int) ([]*domain.Airport, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < autocompleteMinQuery {
		return []*domain.Airport{}, nil
	}

	if limit <= 0 {
		limit = autocompleteDefaultLimit
	}
	if limit > autocompleteMaxLimit {
		limit = autocompleteMaxLimit
	}

	airports, err := uc.airportRepo.Search(ctx, query, limit)
	if err != nil {
		uc.logger.Error("Failed to search airports", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	return airports, nil
}

// InRadius возвращает центр и аэропорты в радиусе от него, ближние первыми
func (uc *AirportUseCase) InRadius(
	ctx context.Context,
	code string,
	radiusKm float64,
) (*domain.Airport, []domain.RadiusResult, error) {
	if !utils.ValidateRadius(radiusKm, uc.maxRadiusKm) {
		return nil, nil, errors.ErrInvalidRadius
	}

	center, err := uc.GetByCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	airports, err := uc.airportRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list airports", zap.Error(err))
		return nil, nil, err
	}

	results := FindInRadius(center.Coordinate(), radiusKm, airports, center.ICAO)
	sortByDistance(results)

	return center, results, nil
}
