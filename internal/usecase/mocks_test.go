package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/airport-tracker/internal/domain"
)

// MockAirportRepository is a mock of AirportRepository
type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) ListAll(ctx context.Context) ([]*domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByCodes(ctx context.Context, codes []string) ([]*domain.Airport, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Airport, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) EnsurePlaceholder(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockFlightRepository is a mock of FlightRepository
type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) FindByDeparture(ctx context.Context, code string) ([]*domain.FlightRecord, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FlightRecord), args.Error(1)
}

func (m *MockFlightRepository) FindByArrival(ctx context.Context, code string) ([]*domain.FlightRecord, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FlightRecord), args.Error(1)
}

func (m *MockFlightRepository) Upsert(ctx context.Context, record *domain.FlightRecord) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int, block time.Duration) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count, block)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockFlightProvider is a mock of FlightProvider
type MockFlightProvider struct {
	mock.Mock
}

func (m *MockFlightProvider) FetchRecent(ctx context.Context, code string, lookbackHours int) (*domain.ProviderFlights, error) {
	args := m.Called(ctx, code, lookbackHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProviderFlights), args.Error(1)
}

// Аэропорты для тестов: B в ~105 км от A, C в ~695 км от A
var (
	airportA = &domain.Airport{ICAO: "AAAA", Name: "Alpha", City: "Alpha City", Country: "RU", Latitude: 55.0, Longitude: 37.0}
	airportB = &domain.Airport{ICAO: "BBBB", Name: "Bravo", City: "Bravo City", Country: "RU", Latitude: 55.9, Longitude: 37.5}
	airportC = &domain.Airport{ICAO: "CCCC", Name: "Charlie", City: "Charlie City", Country: "RU", Latitude: 60.0, Longitude: 30.0}
)

func testAirports() []*domain.Airport {
	return []*domain.Airport{airportA, airportB, airportC}
}
