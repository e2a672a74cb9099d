package dto

// FlightReportRequest - запрос отчёта о рейсах в радиусе от аэропорта
type FlightReportRequest struct {
	ICAO     string  `json:"icao" query:"icao" validate:"required,min=3,max=8"`
	RadiusKm float64 `json:"radius_km" query:"radius_km" validate:"required,gt=0"`
}

// AirportRadiusRequest - запрос аэропортов в радиусе
type AirportRadiusRequest struct {
	RadiusKm float64 `query:"radius_km" validate:"required,gt=0"`
}

// AutocompleteRequest - запрос автодополнения аэропортов
type AutocompleteRequest struct {
	Query string `query:"q"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

// ImportRequest - запрос на импорт рейсов аэропорта
type ImportRequest struct {
	ICAO          string `json:"icao" validate:"required,min=3,max=8"`
	LookbackHours int    `json:"lookback_hours" validate:"omitempty,min=1,max=168"`
}
