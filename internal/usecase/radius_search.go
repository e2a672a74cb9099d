package usecase

import (
	"sort"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/pkg/utils"
)

const distancePrecision = 2

// FindInRadius отбирает аэропорты, находящиеся не дальше radiusKm от center (граница включительно).
// Аэропорт с кодом exclude пропускается. Проверка идёт по неокруглённому расстоянию,
// в результат пишется расстояние, округлённое до 2 знаков. Порядок результата не гарантирован.
//
// Полный перебор O(n): индекс не строится, при сотнях тысяч кандидатов нужен пространственный индекс.
func FindInRadius(
	center domain.Coordinate,
	radiusKm float64,
	candidates []*domain.Airport,
	exclude string,
) []domain.RadiusResult {
	exclude = domain.NormalizeCode(exclude)

	result := make([]domain.RadiusResult, 0)
	for _, airport := range candidates {
		if airport == nil {
			continue
		}
		if exclude != "" && domain.NormalizeCode(airport.ICAO) == exclude {
			continue
		}

		distance := utils.HaversineDistance(center, airport.Coordinate())
		if distance > radiusKm {
			continue
		}

		result = append(result, domain.RadiusResult{
			Airport:    airport,
			DistanceKm: utils.Round(distance, distancePrecision),
		})
	}

	return result
}

// sortByDistance упорядочивает результаты для выдачи: ближние первыми, при равенстве по коду
func sortByDistance(results []domain.RadiusResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Airport.ICAO < results[j].Airport.ICAO
	})
}
