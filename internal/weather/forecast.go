package weather

import (
	"math"
	"sort"

	"github.com/meteolive/weather-lookup/internal/openweather"
)

const maxForecastDays = 5

// buildForecastDays collapses a 3-hourly forecast series into one record per
// day. Samples are grouped by the location's local calendar date (the offset
// is applied per sample before taking the date). The earliest group is always
// dropped: it is the remainder of the current local day, and the series'
// leading partial day would otherwise distort min/max. Up to five of the
// following days are returned in chronological order.
func buildForecastDays(list []openweather.ForecastEntry, utcOffsetSeconds int) []ForecastDay {
	groups := make(map[string][]openweather.ForecastEntry)
	for _, entry := range list {
		key := LocalDateKey(*entry.Dt, utcOffsetSeconds)
		groups[key] = append(groups[key], entry)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Skip today's partial group.
	if len(keys) > 0 {
		keys = keys[1:]
	}
	if len(keys) > maxForecastDays {
		keys = keys[:maxForecastDays]
	}

	days := make([]ForecastDay, 0, len(keys))
	for _, k := range keys {
		days = append(days, collapseDay(groups[k], utcOffsetSeconds))
	}
	return days
}

// collapseDay reduces one local day's samples to a single ForecastDay. The
// representative sample is the first whose local hour lands in the early
// afternoon, 12 through 15; if no sample qualifies, the day's first sample
// stands in. Min and max are taken over every sample of the day, not just
// the representative one.
func collapseDay(samples []openweather.ForecastEntry, utcOffsetSeconds int) ForecastDay {
	rep := samples[0]
	for _, s := range samples {
		hour := ResolveLocalTime(*s.Dt, utcOffsetSeconds).Hour()
		if hour >= 12 && hour <= 15 {
			rep = s
			break
		}
	}

	minTemp := *samples[0].Main.Temp
	maxTemp := minTemp
	for _, s := range samples[1:] {
		if t := *s.Main.Temp; t < minTemp {
			minTemp = t
		} else if t > maxTemp {
			maxTemp = t
		}
	}

	var condition openweather.ConditionEntry
	if len(rep.Weather) > 0 {
		condition = rep.Weather[0]
	}

	return ForecastDay{
		Date: *rep.Dt,
		Temperature: TemperatureRange{
			RepresentativeC: *rep.Main.Temp,
			MinC:            minTemp,
			MaxC:            maxTemp,
		},
		HumidityPct:                 rep.Main.Humidity,
		PrecipitationProbabilityPct: popToPct(rep.Pop),
		WindSpeedMs:                 rep.Wind.Speed,
		ConditionCode:               condition.Icon,
		ConditionText:               condition.Description,
	}
}

// daysFromLegacy maps the already-daily legacy forecast onto ForecastDay
// records. The first entry is today and is skipped; the next five map one to
// one with no re-grouping.
func daysFromLegacy(list []openweather.DailyForecastEntry) []ForecastDay {
	if len(list) > 0 {
		list = list[1:]
	}
	if len(list) > maxForecastDays {
		list = list[:maxForecastDays]
	}

	days := make([]ForecastDay, 0, len(list))
	for _, entry := range list {
		var condition openweather.ConditionEntry
		if len(entry.Weather) > 0 {
			condition = entry.Weather[0]
		}

		days = append(days, ForecastDay{
			Date: *entry.Dt,
			Temperature: TemperatureRange{
				RepresentativeC: *entry.Temp.Day,
				MinC:            entry.Temp.Min,
				MaxC:            entry.Temp.Max,
			},
			HumidityPct:                 entry.Humidity,
			PrecipitationProbabilityPct: popToPct(entry.Pop),
			WindSpeedMs:                 entry.Speed,
			ConditionCode:               condition.Icon,
			ConditionText:               condition.Description,
		})
	}
	return days
}

// popToPct scales a 0..1 precipitation probability fraction to a whole
// percentage, rounding rather than truncating.
func popToPct(pop float64) int {
	return int(math.Round(pop * 100))
}
