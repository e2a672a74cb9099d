package usecase

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/airport-tracker/internal/domain"
)

const (
	mockMinDurationMinutes = 60
	mockMaxDurationMinutes = 360
	mockMinFlightNumber    = 100
	mockMaxFlightNumber    = 9999
)

// mockCarriers - двухбуквенные коды перевозчиков для синтетических рейсов
var mockCarriers = []string{"SU", "S7", "U6", "UT", "DP", "FV", "N4", "WZ"}

// MockFlightGenerator генерирует правдоподобные синтетические рейсы для демонстрации.
// Внешних вызовов и записи в хранилище нет.
type MockFlightGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockFlightGenerator создаёт генератор. seed == 0 означает seed от текущего времени.
func NewMockFlightGenerator(seed int64) *MockFlightGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockFlightGenerator{
		rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Generate выбирает min(maxFlights, len(candidates)) различных кандидатов (выборка без возвращения)
// и для каждого создаёт рейс со случайным направлением относительно centerCode.
func (g *MockFlightGenerator) Generate(
	centerCode string,
	candidates []domain.RadiusResult,
	maxFlights int,
) []domain.FlightEntry {
	count := min(maxFlights, len(candidates))
	if count <= 0 {
		return []domain.FlightEntry{}
	}

	centerCode = domain.NormalizeCode(centerCode)

	g.mu.Lock()
	defer g.mu.Unlock()

	// Частичная перетасовка Фишера-Йетса по индексам
	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + g.rnd.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	flights := make([]domain.FlightEntry, 0, count)
	for _, i := range idx[:count] {
		counterpart := candidates[i].Airport.ICAO
		entry := domain.FlightEntry{
			Callsign: fmt.Sprintf("%s%d",
				mockCarriers[g.rnd.IntN(len(mockCarriers))],
				mockMinFlightNumber+g.rnd.IntN(mockMaxFlightNumber-mockMinFlightNumber+1)),
			ICAO24:          fmt.Sprintf("%06x", g.rnd.IntN(1<<24)),
			CounterpartICAO: counterpart,
			DurationMinutes: mockMinDurationMinutes + g.rnd.IntN(mockMaxDurationMinutes-mockMinDurationMinutes+1),
			Source:          domain.SourceMock,
		}

		if g.rnd.IntN(2) == 0 {
			entry.Type = domain.DirectionDeparture
			entry.FromICAO = centerCode
			entry.ToICAO = counterpart
		} else {
			entry.Type = domain.DirectionArrival
			entry.FromICAO = counterpart
			entry.ToICAO = centerCode
		}

		flights = append(flights, entry)
	}

	return flights
}
