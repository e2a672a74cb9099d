package usecase

import (
	"context"
	stderrors "errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/errors"
	"github.com/airport-tracker/internal/pkg/utils"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

// ReportOptions - параметры построения отчёта
type ReportOptions struct {
	MaxMockFlights      int
	MaxRadiusKm         float64
	RequestImport       bool
	ImportLookbackHours int
}

// FlightReportUseCase строит отчёт об активности рейсов между центральным аэропортом
// и аэропортами в заданном радиусе
type FlightReportUseCase struct {
	airportRepo repository.AirportRepository
	flightRepo  repository.FlightRepository
	streamRepo  repository.StreamRepository
	mockGen     *MockFlightGenerator
	logger      *zap.Logger
	opts        ReportOptions

	pending sync.WaitGroup
}

// NewFlightReportUseCase создает новый экземпляр FlightReportUseCase.
// streamRepo может быть nil, тогда запросы на импорт не публикуются.
func NewFlightReportUseCase(
	airportRepo repository.AirportRepository,
	flightRepo repository.FlightRepository,
	streamRepo repository.StreamRepository,
	mockGen *MockFlightGenerator,
	logger *zap.Logger,
	opts ReportOptions,
) *FlightReportUseCase {
	if opts.MaxMockFlights <= 0 {
		opts.MaxMockFlights = 30
	}
	if opts.ImportLookbackHours <= 0 {
		opts.ImportLookbackHours = 24
	}
	return &FlightReportUseCase{
		airportRepo: airportRepo,
		flightRepo:  flightRepo,
		streamRepo:  streamRepo,
		mockGen:     mockGen,
		logger:      logger,
		opts:        opts,
	}
}

// BuildReport строит отчёт для аэропорта centerCode и радиуса radiusKm.
// Ошибки: ErrInvalidAirportCode / ErrInvalidRadius до любых запросов,
// ErrAirportNotFound если центр не найден, ErrDatabaseError при сбое хранилища.
func (uc *FlightReportUseCase) BuildReport(
	ctx context.Context,
	centerCode string,
	radiusKm float64,
) (*domain.FlightActivityReport, error) {
	code := domain.NormalizeCode(centerCode)
	if code == "" {
		return nil, errors.ErrInvalidAirportCode
	}
	if !utils.ValidateRadius(radiusKm, uc.opts.MaxRadiusKm) {
		return nil, errors.ErrInvalidRadius
	}

	log := uc.logger.With(zap.String("icao", code), zap.Float64("radius_km", radiusKm))

	// 1. Центральный аэропорт
	center, err := uc.airportRepo.GetByCode(ctx, code)
	if err != nil {
		if stderrors.Is(err, errors.ErrAirportNotFound) {
			return nil, errors.ErrAirportNotFound
		}
		return nil, uc.internalError(log, "center_lookup", err)
	}

	// 2. Аэропорты в радиусе
	airports, err := uc.airportRepo.ListAll(ctx)
	if err != nil {
		return nil, uc.internalError(log, "list_airports", err)
	}

	inRadius := FindInRadius(center.Coordinate(), radiusKm, airports, center.ICAO)
	sortByDistance(inRadius)

	// 3-5. Рейсы из локального хранилища
	flights, err := uc.correlateStoredFlights(ctx, center.ICAO, inRadius)
	if err != nil {
		return nil, uc.internalError(log, "flight_store", err)
	}

	// 6. Полная замена синтетикой, если реальных рейсов нет
	if len(flights) == 0 {
		flights = uc.mockGen.Generate(center.ICAO, inRadius, uc.opts.MaxMockFlights)
		if len(flights) > 0 {
			log.Debug("No stored flights in radius, using mock data", zap.Int("mock_flights", len(flights)))
			uc.requestImport(center.ICAO)
		}
	}

	// 7. Сборка отчёта
	report := &domain.FlightActivityReport{
		CenterAirport:    center,
		RadiusKm:         radiusKm,
		AirportsInRadius: inRadius,
		Flights:          flights,
	}
	report.ComputeStatistics()

	log.Info("Flight report built",
		zap.Int("airports_in_radius", report.Statistics.TotalAirportsInRadius),
		zap.Int("flights", report.Statistics.TotalFlights),
		zap.Bool("mock", report.IsMock()))

	return report, nil
}

type classifiedFlight struct {
	entry     domain.FlightEntry
	firstSeen time.Time
}

// correlateStoredFlights читает вылеты и прилёты центра двумя отдельными запросами
// и оставляет только рейсы, у которых второй аэропорт попал в радиус
func (uc *FlightReportUseCase) correlateStoredFlights(
	ctx context.Context,
	centerCode string,
	inRadius []domain.RadiusResult,
) ([]domain.FlightEntry, error) {
	var departures, arrivals []*domain.FlightRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		departures, err = uc.flightRepo.FindByDeparture(gctx, centerCode)
		return err
	})
	g.Go(func() error {
		var err error
		arrivals, err = uc.flightRepo.FindByArrival(gctx, centerCode)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make(map[string]struct{}, len(inRadius))
	for _, r := range inRadius {
		candidates[domain.NormalizeCode(r.Airport.ICAO)] = struct{}{}
	}

	// Центр исключён из radius-набора, поэтому рейсы центр->центр отбрасываются
	outbound := classify(departures, domain.DirectionDeparture, candidates)
	inbound := classify(arrivals, domain.DirectionArrival, candidates)

	flights := make([]domain.FlightEntry, 0, len(outbound)+len(inbound))
	for _, c := range outbound {
		flights = append(flights, c.entry)
	}
	for _, c := range inbound {
		flights = append(flights, c.entry)
	}
	return flights, nil
}

func classify(
	records []*domain.FlightRecord,
	direction domain.FlightDirection,
	candidates map[string]struct{},
) []classifiedFlight {
	out := make([]classifiedFlight, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}

		from := domain.NormalizeCode(rec.DepartureICAO)
		to := domain.NormalizeCode(rec.ArrivalICAO)
		counterpart := to
		if direction == domain.DirectionArrival {
			counterpart = from
		}
		if _, ok := candidates[counterpart]; !ok {
			continue
		}

		out = append(out, classifiedFlight{
			entry: domain.FlightEntry{
				Callsign:        rec.Callsign,
				ICAO24:          rec.ICAO24,
				Type:            direction,
				FromICAO:        from,
				ToICAO:          to,
				CounterpartICAO: counterpart,
				DurationMinutes: max(rec.DurationMinutes, 0),
				Source:          domain.SourceDatabase,
			},
			firstSeen: rec.FirstSeen,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].firstSeen.After(out[j].firstSeen)
	})
	return out
}

// requestImport публикует запрос на импорт в фоне, результат отчёта от него не зависит
func (uc *FlightReportUseCase) requestImport(code string) {
	if !uc.opts.RequestImport || uc.streamRepo == nil {
		return
	}

	event := domain.NewImportRequestEvent(code, uc.opts.ImportLookbackHours)

	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamFlightImport, event); err != nil {
			uc.logger.Warn("Failed to publish import request",
				zap.String("icao", code),
				zap.Error(err))
			return
		}
		uc.logger.Debug("Import request published",
			zap.String("icao", code),
			zap.String("request_id", event.RequestID.String()))
	}()
}

// Wait дожидается завершения фоновых публикаций (используется при остановке сервиса)
func (uc *FlightReportUseCase) Wait() {
	uc.pending.Wait()
}

func (uc *FlightReportUseCase) internalError(log *zap.Logger, stage string, err error) error {
	log.Error("Failed to build flight report", zap.String("stage", stage), zap.Error(err))

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return errors.ErrInternalServer.Wrap(err)
}
