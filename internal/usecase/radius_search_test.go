package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/pkg/utils"
	"github.com/airport-tracker/internal/usecase"
)

func TestFindInRadius(t *testing.T) {
	center := airportA.Coordinate()

	t.Run("only nearby airport included", func(t *testing.T) {
		results := usecase.FindInRadius(center, 150, []*domain.Airport{airportB, airportC}, "")

		require.Len(t, results, 1)
		assert.Equal(t, "BBBB", results[0].Airport.ICAO)
		assert.InDelta(t, 104.92, results[0].DistanceKm, 0.01)
	})

	t.Run("center is excluded case-insensitively", func(t *testing.T) {
		results := usecase.FindInRadius(center, 1000, testAirports(), "aaaa")

		assert.Len(t, results, 2)
		for _, r := range results {
			assert.NotEqual(t, "AAAA", r.Airport.ICAO)
		}
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		exact := utils.HaversineDistance(center, airportB.Coordinate())

		results := usecase.FindInRadius(center, exact, []*domain.Airport{airportB}, "")
		assert.Len(t, results, 1)

		results = usecase.FindInRadius(center, exact-1e-9, []*domain.Airport{airportB}, "")
		assert.Empty(t, results)
	})

	t.Run("inclusion uses unrounded distance", func(t *testing.T) {
		exact := utils.HaversineDistance(center, airportB.Coordinate())
		rounded := utils.Round(exact, 2)

		results := usecase.FindInRadius(center, rounded, []*domain.Airport{airportB}, "")
		if rounded < exact {
			assert.Empty(t, results)
		} else {
			assert.Len(t, results, 1)
		}
	})

	t.Run("zero radius returns only co-located airports", func(t *testing.T) {
		twin := &domain.Airport{ICAO: "TWIN", Latitude: airportA.Latitude, Longitude: airportA.Longitude}

		results := usecase.FindInRadius(center, 0, []*domain.Airport{airportA, twin, airportB}, "AAAA")

		require.Len(t, results, 1)
		assert.Equal(t, "TWIN", results[0].Airport.ICAO)
		assert.Equal(t, 0.0, results[0].DistanceKm)
	})

	t.Run("empty candidates", func(t *testing.T) {
		results := usecase.FindInRadius(center, 100, nil, "")
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}
