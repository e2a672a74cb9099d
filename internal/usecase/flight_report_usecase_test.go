package usecase_test

import (
	"context"
	stderrors "errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/pkg/errors"
	"github.com/airport-tracker/internal/usecase"
)

type reportFixture struct {
	airportRepo *MockAirportRepository
	flightRepo  *MockFlightRepository
	streamRepo  *MockStreamRepository
	uc          *usecase.FlightReportUseCase
}

func newReportFixture(opts usecase.ReportOptions) *reportFixture {
	f := &reportFixture{
		airportRepo: new(MockAirportRepository),
		flightRepo:  new(MockFlightRepository),
		streamRepo:  new(MockStreamRepository),
	}
	f.uc = usecase.NewFlightReportUseCase(
		f.airportRepo,
		f.flightRepo,
		f.streamRepo,
		usecase.NewMockFlightGenerator(1),
		zap.NewNop(),
		opts,
	)
	return f
}

func record(callsign, from, to string, firstSeen time.Time) *domain.FlightRecord {
	return &domain.FlightRecord{
		Callsign:        callsign,
		DepartureICAO:   from,
		ArrivalICAO:     to,
		FirstSeen:       firstSeen,
		LastSeen:        firstSeen.Add(90 * time.Minute),
		DurationMinutes: 90,
	}
}

func TestBuildReport_InvalidInput(t *testing.T) {
	f := newReportFixture(usecase.ReportOptions{MaxRadiusKm: 20000})
	ctx := context.Background()

	_, err := f.uc.BuildReport(ctx, "   ", 100)
	assert.ErrorIs(t, err, errors.ErrInvalidAirportCode)

	for _, radius := range []float64{0, -5, 20001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = f.uc.BuildReport(ctx, "AAAA", radius)
		assert.ErrorIs(t, err, errors.ErrInvalidRadius, "radius %v", radius)
	}

	f.airportRepo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	f.flightRepo.AssertNotCalled(t, "FindByDeparture", mock.Anything, mock.Anything)
}

func TestBuildReport_CenterNotFound(t *testing.T) {
	f := newReportFixture(usecase.ReportOptions{})
	ctx := context.Background()

	f.airportRepo.On("GetByCode", ctx, "ZZZZ").Return(nil, errors.ErrAirportNotFound)

	report, err := f.uc.BuildReport(ctx, "zzzz", 100)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, errors.ErrAirportNotFound)
	f.airportRepo.AssertNotCalled(t, "ListAll", mock.Anything)
	f.flightRepo.AssertNotCalled(t, "FindByDeparture", mock.Anything, mock.Anything)
	f.flightRepo.AssertNotCalled(t, "FindByArrival", mock.Anything, mock.Anything)
}

func TestBuildReport_StoredFlights(t *testing.T) {
	f := newReportFixture(usecase.ReportOptions{RequestImport: true})
	ctx := context.Background()
	now := time.Now().UTC()

	f.airportRepo.On("GetByCode", ctx, "AAAA").Return(airportA, nil)
	f.airportRepo.On("ListAll", ctx).Return(testAirports(), nil)
	f.flightRepo.On("FindByDeparture", mock.Anything, "AAAA").Return([]*domain.FlightRecord{
		record("SU100", "AAAA", "BBBB", now.Add(-3*time.Hour)),
		record("SU101", "AAAA", "BBBB", now.Add(-1*time.Hour)),
		record("SU200", "AAAA", "CCCC", now), // вне радиуса
		record("SU300", "AAAA", "AAAA", now), // петля
	}, nil)
	f.flightRepo.On("FindByArrival", mock.Anything, "AAAA").Return([]*domain.FlightRecord{
		record("S7400", "bbbb", "AAAA", now.Add(-2*time.Hour)),
		record("SU300", "AAAA", "AAAA", now),
	}, nil)

	report, err := f.uc.BuildReport(ctx, "aaaa", 150)
	require.NoError(t, err)
	f.uc.Wait()

	assert.Equal(t, "AAAA", report.CenterAirport.ICAO)
	require.Len(t, report.AirportsInRadius, 1)
	assert.Equal(t, "BBBB", report.AirportsInRadius[0].Airport.ICAO)

	require.Len(t, report.Flights, 3)
	assert.Equal(t, "SU101", report.Flights[0].Callsign)
	assert.Equal(t, "SU100", report.Flights[1].Callsign)
	assert.Equal(t, "S7400", report.Flights[2].Callsign)

	assert.Equal(t, domain.DirectionDeparture, report.Flights[0].Type)
	assert.Equal(t, domain.DirectionArrival, report.Flights[2].Type)
	assert.Equal(t, "BBBB", report.Flights[2].FromICAO)
	for _, fl := range report.Flights {
		assert.Equal(t, domain.SourceDatabase, fl.Source)
		assert.Equal(t, 90, fl.DurationMinutes)
	}

	assert.Equal(t, 3, report.Statistics.TotalFlights)
	assert.Equal(t, 2, report.Statistics.Departures)
	assert.Equal(t, 1, report.Statistics.Arrivals)
	assert.Equal(t, 1, report.Statistics.TotalAirportsInRadius)
	assert.False(t, report.IsMock())

	f.streamRepo.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildReport_MockFallback(t *testing.T) {
	f := newReportFixture(usecase.ReportOptions{RequestImport: true, ImportLookbackHours: 12})
	ctx := context.Background()

	f.airportRepo.On("GetByCode", ctx, "AAAA").Return(airportA, nil)
	f.airportRepo.On("ListAll", ctx).Return(testAirports(), nil)
	f.flightRepo.On("FindByDeparture", mock.Anything, "AAAA").Return([]*domain.FlightRecord{
		// DDDD нет среди аэропортов, рейс не проходит по радиусу
		record("SU200", "AAAA", "DDDD", time.Now()),
	}, nil)
	f.flightRepo.On("FindByArrival", mock.Anything, "AAAA").Return([]*domain.FlightRecord{}, nil)
	f.streamRepo.On("PublishToStream", mock.Anything, domain.StreamFlightImport,
		mock.MatchedBy(func(e *domain.ImportRequestEvent) bool {
			return e.ICAO == "AAAA" && e.LookbackHours == 12
		})).Return(nil)

	report, err := f.uc.BuildReport(ctx, "AAAA", 1000)
	require.NoError(t, err)
	f.uc.Wait()

	assert.Len(t, report.AirportsInRadius, 2)
	require.Len(t, report.Flights, 2)
	assert.True(t, report.IsMock())
	for _, fl := range report.Flights {
		assert.Equal(t, domain.SourceMock, fl.Source)
		assert.Contains(t, []string{"BBBB", "CCCC"}, fl.CounterpartICAO)
	}
	assert.Equal(t, report.Statistics.TotalFlights,
		report.Statistics.Departures+report.Statistics.Arrivals)

	f.streamRepo.AssertNumberOfCalls(t, "PublishToStream", 1)
}

func TestBuildReport_PublishFailureDoesNotFailReport(t *testing.T) {
	f := newReportFixture(usecase.ReportOptions{RequestImport: true})
	ctx := context.Background()

	f.airportRepo.On("GetByCode", ctx, "AAAA").Return(airportA, nil)
	f.airportRepo.On("ListAll", ctx).Return(testAirports(), nil)
	f.flightRepo.On("FindByDeparture", mock.Anything, "AAAA").Return(nil, nil)
	f.flightRepo.On("FindByArrival", mock.Anything, "AAAA").Return(nil, nil)
	f.streamRepo.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).
		Return(stderrors.New("redis down"))

	report, err := f.uc.BuildReport(ctx, "AAAA", 150)
	require.NoError(t, err)
	f.uc.Wait()

	assert.Len(t, report.Flights, 1)
}

func TestBuildReport_EmptyRadius(t *testing.T) {
	f := newReportFixture(usecase.ReportOptions{RequestImport: true})
	ctx := context.Background()

	f.airportRepo.On("GetByCode", ctx, "AAAA").Return(airportA, nil)
	f.airportRepo.On("ListAll", ctx).Return(testAirports(), nil)
	f.flightRepo.On("FindByDeparture", mock.Anything, "AAAA").Return(nil, nil)
	f.flightRepo.On("FindByArrival", mock.Anything, "AAAA").Return(nil, nil)

	report, err := f.uc.BuildReport(ctx, "AAAA", 10)
	require.NoError(t, err)
	f.uc.Wait()

	assert.Empty(t, report.AirportsInRadius)
	assert.Empty(t, report.Flights)
	assert.Equal(t, 0, report.Statistics.TotalFlights)
	f.streamRepo.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildReport_StoreFailure(t *testing.T) {
	f := newReportFixture(usecase.ReportOptions{})
	ctx := context.Background()

	f.airportRepo.On("GetByCode", ctx, "AAAA").Return(airportA, nil)
	f.airportRepo.On("ListAll", ctx).Return(testAirports(), nil)
	f.flightRepo.On("FindByDeparture", mock.Anything, "AAAA").
		Return(nil, errors.ErrDatabaseError.Wrap(stderrors.New("connection reset")))
	f.flightRepo.On("FindByArrival", mock.Anything, "AAAA").Return(nil, nil)

	report, err := f.uc.BuildReport(ctx, "AAAA", 150)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, errors.ErrDatabaseError)
}

func TestBuildReport_UnexpectedLookupError(t *testing.T) {
	f := newReportFixture(usecase.ReportOptions{})
	ctx := context.Background()

	f.airportRepo.On("GetByCode", ctx, "AAAA").Return(nil, stderrors.New("boom"))

	_, err := f.uc.BuildReport(ctx, "AAAA", 150)
	assert.ErrorIs(t, err, errors.ErrInternalServer)
}
