package domain

// Coordinate - точка в градусах, lat ∈ [-90, 90], lon ∈ [-180, 180]
type Coordinate struct {
	Lat float64 `json:"lat" db:"latitude"`
	Lon float64 `json:"lon" db:"longitude"`
}
