package usecase_test

import (
	"context"
	stderrors "errors"
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

func TestFlightImportUseCase_ImportAirport(t *testing.T) {
	provider := new(MockFlightProvider)
	airportRepo := new(MockAirportRepository)
	flightRepo := new(MockFlightRepository)
	uc := usecase.NewFlightImportUseCase(provider, airportRepo, flightRepo, zap.NewNop())
	ctx := context.Background()

	first := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	provider.On("FetchRecent", ctx, "AAAA", 24).Return(&domain.ProviderFlights{
		Departures: []domain.ProviderFlight{
			{ICAO24: "ABC123", Callsign: "SU100  ", FirstSeen: first.Unix(), LastSeen: first.Add(95 * time.Minute).Unix(), EstArrivalAirport: "bbbb", Raw: []byte(`{"x":1}`)},
			{ICAO24: "abc124", Callsign: "", EstArrivalAirport: "BBBB"},
			{ICAO24: "abc125", Callsign: "SU101", EstArrivalAirport: ""},
		},
		Arrivals: []domain.ProviderFlight{
			{ICAO24: "abc126", Callsign: "S7200", FirstSeen: first.Unix(), LastSeen: first.Unix(), EstDepartureAirport: "CCCC"},
		},
	}, nil)
	airportRepo.On("EnsurePlaceholder", ctx, mock.Anything).Return(nil)
	flightRepo.On("Upsert", ctx, mock.Anything).Return(true, nil)

	res, err := uc.ImportAirport(ctx, "aaaa", 24)
	require.NoError(t, err)

	assert.Equal(t, "AAAA", res.ICAO)
	assert.Equal(t, 1, res.Departures)
	assert.Equal(t, 1, res.Arrivals)
	assert.Equal(t, 2, res.Skipped)

	airportRepo.AssertCalled(t, "EnsurePlaceholder", ctx, "AAAA")
	airportRepo.AssertCalled(t, "EnsurePlaceholder", ctx, "BBBB")
	airportRepo.AssertCalled(t, "EnsurePlaceholder", ctx, "CCCC")

	flightRepo.AssertCalled(t, "Upsert", ctx, mock.MatchedBy(func(r *domain.FlightRecord) bool {
		return r.Callsign == "SU100" &&
			r.ICAO24 == "abc123" &&
			r.DepartureICAO == "AAAA" &&
			r.ArrivalICAO == "BBBB" &&
			r.DurationMinutes == 95 &&
			string(r.Payload) == `{"x":1}`
	}))
	flightRepo.AssertCalled(t, "Upsert", ctx, mock.MatchedBy(func(r *domain.FlightRecord) bool {
		return r.Callsign == "S7200" && r.DepartureICAO == "CCCC" && r.ArrivalICAO == "AAAA" && r.DurationMinutes == 0
	}))
	flightRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestFlightImportUseCase_StoreFailureContinues(t *testing.T) {
	provider := new(MockFlightProvider)
	airportRepo := new(MockAirportRepository)
	flightRepo := new(MockFlightRepository)
	uc := usecase.NewFlightImportUseCase(provider, airportRepo, flightRepo, zap.NewNop())
	ctx := context.Background()

	provider.On("FetchRecent", ctx, "AAAA", 24).Return(&domain.ProviderFlights{
		Departures: []domain.ProviderFlight{
			{ICAO24: "abc001", Callsign: "SU1", EstArrivalAirport: "BBBB"},
			{ICAO24: "abc002", Callsign: "SU2", EstArrivalAirport: "XXXX"},
			{ICAO24: "abc003", Callsign: "SU3", EstArrivalAirport: "CCCC"},
		},
		Arrivals: []domain.ProviderFlight{
			{ICAO24: "abc004", Callsign: "SU4", EstDepartureAirport: "BBBB"},
		},
	}, nil)
	airportRepo.On("EnsurePlaceholder", ctx, "XXXX").Return(stderrors.New("insert airport: deadlock"))
	airportRepo.On("EnsurePlaceholder", ctx, mock.Anything).Return(nil)
	flightRepo.On("Upsert", ctx, mock.MatchedBy(func(r *domain.FlightRecord) bool {
		return r.Callsign == "SU3"
	})).Return(false, stderrors.New("upsert: connection reset"))
	flightRepo.On("Upsert", ctx, mock.Anything).Return(true, nil)

	res, err := uc.ImportAirport(ctx, "AAAA", 24)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Departures)
	assert.Equal(t, 1, res.Arrivals)
	assert.Equal(t, 2, res.Failed)
	assert.Zero(t, res.Skipped)
	flightRepo.AssertNumberOfCalls(t, "Upsert", 3)
}

func TestFlightImportUseCase_ProviderError(t *testing.T) {
	provider := new(MockFlightProvider)
	airportRepo := new(MockAirportRepository)
	flightRepo := new(MockFlightRepository)
	uc := usecase.NewFlightImportUseCase(provider, airportRepo, flightRepo, zap.NewNop())
	ctx := context.Background()

	provider.On("FetchRecent", ctx, "AAAA", 6).Return(nil, stderrors.New("timeout"))

	_, err := uc.ImportAirport(ctx, "AAAA", 6)
	assert.ErrorIs(t, err, errors.ErrProviderUnavailable)
	airportRepo.AssertNotCalled(t, "EnsurePlaceholder", mock.Anything, mock.Anything)

	_, err = uc.ImportAirport(ctx, "", 6)
	assert.ErrorIs(t, err, errors.ErrInvalidAirportCode)
	_, err = uc.ImportAirport(ctx, "AAAA", 0)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestFlightImportUseCase_ImportAll(t *testing.T) {
	provider := new(MockFlightProvider)
	airportRepo := new(MockAirportRepository)
	flightRepo := new(MockFlightRepository)
	uc := usecase.NewFlightImportUseCase(provider, airportRepo, flightRepo, zap.NewNop())
	ctx := context.Background()

	airportRepo.On("ListAll", ctx).Return(testAirports(), nil)
	airportRepo.On("EnsurePlaceholder", ctx, mock.Anything).Return(nil)
	provider.On("FetchRecent", ctx, "AAAA", 24).Return(&domain.ProviderFlights{}, nil)
	provider.On("FetchRecent", ctx, "BBBB", 24).Return(nil, stderrors.New("rate limited"))

	results, failed, err := uc.ImportAll(ctx, 24, 2)
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 1, failed)
	provider.AssertNotCalled(t, "FetchRecent", ctx, "CCCC", 24)
}
