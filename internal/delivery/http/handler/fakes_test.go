package handler_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/pkg/errors"
)

type fakeAirportRepo struct {
	airports []*domain.Airport
	failList bool
}

func (r *fakeAirportRepo) GetByCode(_ context.Context, code string) (*domain.Airport, error) {
	for _, a := range r.airports {
		if a.ICAO == domain.NormalizeCode(code) {
			return a, nil
		}
	}
	return nil, errors.ErrAirportNotFound
}

func (r *fakeAirportRepo) ListAll(context.Context) ([]*domain.Airport, error) {
	if r.failList {
		return nil, errors.ErrDatabaseError
	}
	return r.airports, nil
}

func (r *fakeAirportRepo) GetByCodes(_ context.Context, codes []string) ([]*domain.Airport, error) {
	var out []*domain.Airport
	for _, c := range codes {
		if a, err := r.GetByCode(context.Background(), c); err == nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAirportRepo) Search(_ context.Context, query string, limit int) ([]*domain.Airport, error) {
	var out []*domain.Airport
	q := strings.ToLower(query)
	for _, a := range r.airports {
		if strings.HasPrefix(strings.ToLower(a.ICAO), q) || strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeAirportRepo) EnsurePlaceholder(context.Context, string) error { return nil }

type fakeFlightRepo struct {
	flights []*domain.FlightRecord
}

func (r *fakeFlightRepo) FindByDeparture(_ context.Context, code string) ([]*domain.FlightRecord, error) {
	var out []*domain.FlightRecord
	for _, f := range r.flights {
		if f.DepartureICAO == code {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFlightRepo) FindByArrival(_ context.Context, code string) ([]*domain.FlightRecord, error) {
	var out []*domain.FlightRecord
	for _, f := range r.flights {
		if f.ArrivalICAO == code {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFlightRepo) Upsert(context.Context, *domain.FlightRecord) (bool, error) {
	return true, nil
}

type fakeStreamRepo struct {
	mu        sync.Mutex
	published []interface{}
}

func (r *fakeStreamRepo) ConsumeBatch(context.Context, string, string, string, int, time.Duration) ([]domain.StreamMessage, error) {
	return nil, nil
}

func (r *fakeStreamRepo) AckMessage(context.Context, string, string, string) error { return nil }

func (r *fakeStreamRepo) CreateConsumerGroup(context.Context, string, string) error { return nil }

func (r *fakeStreamRepo) PublishToStream(_ context.Context, _ string, data interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, data)
	return nil
}

func (r *fakeStreamRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.published)
}
