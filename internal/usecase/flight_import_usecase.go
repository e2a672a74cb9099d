package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/errors"
	"go.uber.org/zap"
)

// FlightImportUseCase переносит рейсы из внешнего провайдера в локальное хранилище
type FlightImportUseCase struct {
	provider    repository.FlightProvider
	airportRepo repository.AirportRepository
	flightRepo  repository.FlightRepository
	logger      *zap.Logger
}

func NewFlightImportUseCase(
	provider repository.FlightProvider,
	airportRepo repository.AirportRepository,
	flightRepo repository.FlightRepository,
	logger *zap.Logger,
) *FlightImportUseCase {
	return &FlightImportUseCase{
		provider:    provider,
		airportRepo: airportRepo,
		flightRepo:  flightRepo,
		logger:      logger,
	}
}

// ImportAirport импортирует рейсы аэропорта за последние hours часов.
// Ошибка сохранения одного рейса логируется и считается в Failed, импорт продолжается.
func (uc *FlightImportUseCase) ImportAirport(ctx context.Context, code string, hours int) (*domain.ImportResult, error) {
	code = domain.NormalizeCode(code)
	if code == "" {
		return nil, errors.ErrInvalidAirportCode
	}
	if hours <= 0 {
		return nil, errors.ErrInvalidInput
	}

	log := uc.logger.With(zap.String("icao", code), zap.Int("hours", hours))
	log.Info("Importing flights")

	data, err := uc.provider.FetchRecent(ctx, code, hours)
	if err != nil {
		log.Warn("Flight provider unavailable", zap.Error(err))
		return nil, errors.ErrProviderUnavailable.Wrap(err)
	}

	if err := uc.airportRepo.EnsurePlaceholder(ctx, code); err != nil {
		return nil, fmt.Errorf("ensure airport %s: %w", code, err)
	}

	result := &domain.ImportResult{ICAO: code}

	for _, pf := range data.Departures {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		ok, err := uc.importFlight(ctx, code, pf, true)
		if err != nil {
			result.Failed++
			log.Warn("Failed to store flight", zap.String("callsign", pf.Callsign), zap.Error(err))
			continue
		}
		if ok {
			result.Departures++
		} else {
			result.Skipped++
		}
	}
	for _, pf := range data.Arrivals {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		ok, err := uc.importFlight(ctx, code, pf, false)
		if err != nil {
			result.Failed++
			log.Warn("Failed to store flight", zap.String("callsign", pf.Callsign), zap.Error(err))
			continue
		}
		if ok {
			result.Arrivals++
		} else {
			result.Skipped++
		}
	}

	log.Info("Import finished",
		zap.Int("departures", result.Departures),
		zap.Int("arrivals", result.Arrivals),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed))

	return result, nil
}

// importFlight сохраняет один рейс; false - рейс пропущен (нет позывного или второго аэропорта)
func (uc *FlightImportUseCase) importFlight(
	ctx context.Context,
	code string,
	pf domain.ProviderFlight,
	isDeparture bool,
) (bool, error) {
	callsign := strings.TrimSpace(pf.Callsign)
	if callsign == "" {
		return false, nil
	}

	other := pf.EstArrivalAirport
	if !isDeparture {
		other = pf.EstDepartureAirport
	}
	other = domain.NormalizeCode(other)
	if other == "" {
		return false, nil
	}

	if err := uc.airportRepo.EnsurePlaceholder(ctx, other); err != nil {
		return false, fmt.Errorf("ensure airport %s: %w", other, err)
	}

	firstSeen := time.Unix(pf.FirstSeen, 0).UTC()
	lastSeen := time.Unix(pf.LastSeen, 0).UTC()

	record := &domain.FlightRecord{
		Callsign:        callsign,
		ICAO24:          strings.ToLower(strings.TrimSpace(pf.ICAO24)),
		FirstSeen:       firstSeen,
		LastSeen:        lastSeen,
		DurationMinutes: domain.FlightDurationMinutes(firstSeen, lastSeen),
		Payload:         pf.Raw,
	}
	if isDeparture {
		record.DepartureICAO, record.ArrivalICAO = code, other
	} else {
		record.DepartureICAO, record.ArrivalICAO = other, code
	}

	created, err := uc.flightRepo.Upsert(ctx, record)
	if err != nil {
		return false, fmt.Errorf("upsert flight %s: %w", callsign, err)
	}

	uc.logger.Debug("Flight stored",
		zap.String("callsign", callsign),
		zap.String("from", record.DepartureICAO),
		zap.String("to", record.ArrivalICAO),
		zap.Bool("created", created))

	return true, nil
}

// ImportAll импортирует рейсы для первых limit аэропортов. Ошибки по отдельным
// аэропортам логируются и считаются, но не прерывают импорт.
func (uc *FlightImportUseCase) ImportAll(ctx context.Context, hours, limit int) ([]*domain.ImportResult, int, error) {
	airports, err := uc.airportRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list airports: %w", err)
	}

	if limit > 0 && len(airports) > limit {
		airports = airports[:limit]
	}

	results := make([]*domain.ImportResult, 0, len(airports))
	failed := 0
	for _, airport := range airports {
		if err := ctx.Err(); err != nil {
			return results, failed, err
		}

		res, err := uc.ImportAirport(ctx, airport.ICAO, hours)
		if err != nil {
			failed++
			uc.logger.Warn("Airport import failed", zap.String("icao", airport.ICAO), zap.Error(err))
			continue
		}
		results = append(results, res)
	}

	return results, failed, nil
}
