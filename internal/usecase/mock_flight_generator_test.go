package usecase_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/usecase"
)

func radiusCandidates(n int) []domain.RadiusResult {
	out := make([]domain.RadiusResult, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.RadiusResult{
			Airport:    &domain.Airport{ICAO: fmt.Sprintf("X%03d", i)},
			DistanceKm: float64(i),
		})
	}
	return out
}

func TestMockFlightGenerator_Generate(t *testing.T) {
	gen := usecase.NewMockFlightGenerator(42)
	callsignRe := regexp.MustCompile(`^[A-Z0-9]{2}\d{3,4}$`)
	hexRe := regexp.MustCompile(`^[0-9a-f]{6}$`)

	t.Run("samples distinct candidates up to max", func(t *testing.T) {
		flights := gen.Generate("uuee", radiusCandidates(50), 30)

		require.Len(t, flights, 30)
		seen := make(map[string]bool)
		for _, f := range flights {
			assert.False(t, seen[f.CounterpartICAO], "counterpart %s used twice", f.CounterpartICAO)
			seen[f.CounterpartICAO] = true

			assert.Equal(t, domain.SourceMock, f.Source)
			assert.Regexp(t, callsignRe, f.Callsign)
			assert.Regexp(t, hexRe, f.ICAO24)
			assert.GreaterOrEqual(t, f.DurationMinutes, 60)
			assert.LessOrEqual(t, f.DurationMinutes, 360)

			switch f.Type {
			case domain.DirectionDeparture:
				assert.Equal(t, "UUEE", f.FromICAO)
				assert.Equal(t, f.CounterpartICAO, f.ToICAO)
			case domain.DirectionArrival:
				assert.Equal(t, f.CounterpartICAO, f.FromICAO)
				assert.Equal(t, "UUEE", f.ToICAO)
			default:
				t.Fatalf("unexpected direction %q", f.Type)
			}
		}
	})

	t.Run("fewer candidates than max", func(t *testing.T) {
		flights := gen.Generate("UUEE", radiusCandidates(3), 30)
		assert.Len(t, flights, 3)
	})

	t.Run("no candidates", func(t *testing.T) {
		assert.Empty(t, gen.Generate("UUEE", nil, 30))
		assert.Empty(t, gen.Generate("UUEE", radiusCandidates(5), 0))
	})

	t.Run("same seed gives same output", func(t *testing.T) {
		a := usecase.NewMockFlightGenerator(7).Generate("UUEE", radiusCandidates(10), 5)
		b := usecase.NewMockFlightGenerator(7).Generate("UUEE", radiusCandidates(10), 5)
		assert.Equal(t, a, b)
	})
}
