package weather

// Location is a resolved place. It is created once per search and never
// mutated; UTCOffsetSeconds is the provider's offset for the place at resolve
// time (daylight-saving transitions inside a forecast window are not modeled).
type Location struct {
	Name             string  `json:"name"`
	CountryCode      string  `json:"countryCode"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	UTCOffsetSeconds int     `json:"utcOffsetSeconds"`
}

// CurrentConditions is the normalized current-weather record for a location.
// Every timestamp is a UTC epoch; wall-clock values are derived on demand via
// ResolveLocalTime so the record stays unambiguous about which offset applies.
type CurrentConditions struct {
	Location         Location `json:"location"`
	ObservedAt       int64    `json:"observedAt"`
	TemperatureC     float64  `json:"temperatureC"`
	FeelsLikeC       float64  `json:"feelsLikeC"`
	HumidityPct      float64  `json:"humidityPct"`
	WindSpeedMs      float64  `json:"windSpeedMs"`
	WindBearingDeg   float64  `json:"windBearingDeg"`
	ConditionCode    string   `json:"conditionCode"`
	ConditionText    string   `json:"conditionText"`
	PressureHPa      float64  `json:"pressureHPa"`
	VisibilityMeters float64  `json:"visibilityMeters"`
	CloudCoverPct    float64  `json:"cloudCoverPct"`

	// UVIndex is nil when the UV sub-fetch failed or was unavailable,
	// which is not the same thing as an index of zero.
	UVIndex *float64 `json:"uvIndex,omitempty"`

	SunriseAt int64 `json:"sunriseAt"`
	SunsetAt  int64 `json:"sunsetAt"`

	// Alerts is nil when the alerts sub-fetch failed, and empty when it
	// succeeded with no active alerts.
	Alerts []Alert `json:"alerts,omitempty"`
}

// TemperatureRange holds a day's representative temperature together with the
// min/max over every raw sample that fell on that day.
type TemperatureRange struct {
	RepresentativeC float64 `json:"representative"`
	MinC            float64 `json:"min"`
	MaxC            float64 `json:"max"`
}

// ForecastDay is one normalized day of forecast. Date is the UTC epoch of the
// representative sample; grouping into days happens on the location's local
// calendar, not the viewer's.
type ForecastDay struct {
	Date                        int64            `json:"date"`
	Temperature                 TemperatureRange `json:"temperature"`
	HumidityPct                 float64          `json:"humidityPct"`
	PrecipitationProbabilityPct int              `json:"precipitationProbabilityPct"`
	WindSpeedMs                 float64          `json:"windSpeedMs"`
	ConditionCode               string           `json:"conditionCode"`
	ConditionText               string           `json:"conditionText"`
}

// Alert is a normalized severe-weather alert. StartAt <= EndAt always holds;
// severity is derived from EventName via AlertSeverityOf, never stored.
type Alert struct {
	SourceName  string `json:"sourceName"`
	EventName   string `json:"eventName"`
	StartAt     int64  `json:"startAt"`
	EndAt       int64  `json:"endAt"`
	Description string `json:"description"`
}
