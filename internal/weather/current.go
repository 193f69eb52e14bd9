package weather

import (
	"math"

	"github.com/meteolive/weather-lookup/internal/openweather"
)

// normalizeCurrent maps a raw current-weather payload plus the optional UV
// and alert enrichments into the canonical record. Temperatures are rounded
// to whole degrees here; humidity, pressure, cloud cover, visibility and wind
// pass through untouched. A nil uv or alerts slice marks the corresponding
// sub-fetch as unavailable.
func normalizeCurrent(raw *openweather.CurrentWeatherReply, uv *float64, alerts []Alert) CurrentConditions {
	loc := Location{
		Name:             raw.Name,
		CountryCode:      raw.Sys.Country,
		Latitude:         raw.Coord.Lat,
		Longitude:        raw.Coord.Lon,
		UTCOffsetSeconds: raw.Timezone,
	}

	var condition openweather.ConditionEntry
	if len(raw.Weather) > 0 {
		condition = raw.Weather[0]
	}

	return CurrentConditions{
		Location:         loc,
		ObservedAt:       *raw.Dt,
		TemperatureC:     math.Round(*raw.Main.Temp),
		FeelsLikeC:       math.Round(raw.Main.FeelsLike),
		HumidityPct:      raw.Main.Humidity,
		WindSpeedMs:      raw.Wind.Speed,
		WindBearingDeg:   raw.Wind.Deg,
		ConditionCode:    condition.Icon,
		ConditionText:    condition.Description,
		PressureHPa:      raw.Main.Pressure,
		VisibilityMeters: raw.Visibility,
		CloudCoverPct:    raw.Clouds.All,
		UVIndex:          uv,
		SunriseAt:        raw.Sys.Sunrise,
		SunsetAt:         raw.Sys.Sunset,
		Alerts:           alerts,
	}
}
