package utils

import (
	"math"

	"github.com/airport-tracker/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineDistance вычисляет расстояние по большому кругу между двумя точками в километрах.
// Для координат вне допустимых диапазонов результат не определён, проверка на вызывающей стороне.
func HaversineDistance(a, b domain.Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	lat1Rad := toRadians(a.Lat)
	lat2Rad := toRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Round округляет значение до заданного числа знаков после запятой
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет, что радиус конечный, положительный и не больше maxKm
func ValidateRadius(radiusKm, maxKm float64) bool {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return false
	}
	return maxKm <= 0 || radiusKm <= maxKm
}
