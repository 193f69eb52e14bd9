package weather

import "github.com/meteolive/weather-lookup/internal/openweather"

// NormalizeAlerts maps raw alert entries into Alert records. Timestamps stay
// raw UTC epochs; display-local times are derived later via ResolveLocalTime
// like every other entity. Empty or nil input yields an empty, non-nil
// result. An inverted interval has its end clamped up to its start so that
// StartAt <= EndAt always holds.
func NormalizeAlerts(raw []openweather.AlertEntry) []Alert {
	alerts := make([]Alert, 0, len(raw))
	for _, entry := range raw {
		end := entry.End
		if end < entry.Start {
			end = entry.Start
		}
		alerts = append(alerts, Alert{
			SourceName:  entry.SenderName,
			EventName:   entry.Event,
			StartAt:     entry.Start,
			EndAt:       end,
			Description: entry.Description,
		})
	}
	return alerts
}
