package weather

import (
	"fmt"
	"strings"

	"github.com/meteolive/weather-lookup/internal/common"
)

// TimeOfDay buckets a local hour into the four display regimes.
type TimeOfDay string

const (
	TimeMorning TimeOfDay = "morning"
	TimeDay     TimeOfDay = "day"
	TimeEvening TimeOfDay = "evening"
	TimeNight   TimeOfDay = "night"
)

// TimeOfDayBucket maps a location-local hour (0..23) to its bucket. The hour
// must come from ResolveLocalTime, never from the viewer's clock.
func TimeOfDayBucket(localHour int) TimeOfDay {
	switch {
	case localHour >= 5 && localHour < 10:
		return TimeMorning
	case localHour >= 10 && localHour < 17:
		return TimeDay
	case localHour >= 17 && localHour < 21:
		return TimeEvening
	default:
		return TimeNight
	}
}

// UVBand is a human category for a UV index reading.
type UVBand string

const (
	UVUnavailable UVBand = "unavailable"
	UVLow         UVBand = "low"
	UVModerate    UVBand = "moderate"
	UVHigh        UVBand = "high"
	UVVeryHigh    UVBand = "veryHigh"
	UVExtreme     UVBand = "extreme"
)

// UVBandOf classifies a UV index. A nil index means the reading was
// unavailable, which is distinct from zero.
func UVBandOf(index *float64) UVBand {
	if index == nil {
		return UVUnavailable
	}
	switch {
	case *index <= 2:
		return UVLow
	case *index <= 5:
		return UVModerate
	case *index <= 7:
		return UVHigh
	case *index <= 10:
		return UVVeryHigh
	default:
		return UVExtreme
	}
}

// PrecipBand is a human category for a precipitation probability.
type PrecipBand string

const (
	PrecipVeryLow  PrecipBand = "veryLow"
	PrecipLow      PrecipBand = "low"
	PrecipModerate PrecipBand = "moderate"
	PrecipHigh     PrecipBand = "high"
	PrecipVeryHigh PrecipBand = "veryHigh"
)

// PrecipitationBandOf classifies a precipitation probability in percent.
func PrecipitationBandOf(probabilityPct float64) PrecipBand {
	switch {
	case probabilityPct < 20:
		return PrecipVeryLow
	case probabilityPct < 40:
		return PrecipLow
	case probabilityPct < 60:
		return PrecipModerate
	case probabilityPct < 80:
		return PrecipHigh
	default:
		return PrecipVeryHigh
	}
}

// VisibilityBand is a human category for horizontal visibility.
type VisibilityBand string

const (
	VisibilityPoor      VisibilityBand = "poor"
	VisibilityModerate  VisibilityBand = "moderate"
	VisibilityGood      VisibilityBand = "good"
	VisibilityExcellent VisibilityBand = "excellent"
)

// VisibilityBandOf classifies visibility in meters with breaks at 1, 5 and
// 10 km.
func VisibilityBandOf(meters float64) VisibilityBand {
	km := meters / 1000
	switch {
	case km < 1:
		return VisibilityPoor
	case km < 5:
		return VisibilityModerate
	case km < 10:
		return VisibilityGood
	default:
		return VisibilityExcellent
	}
}

// FormatVisibility renders visibility as a distance label with its band, e.g.
// "3.2km (moderate)". Below one kilometer the raw meter value is shown.
func FormatVisibility(meters float64) string {
	band := VisibilityBandOf(meters)
	if band == VisibilityPoor {
		return fmt.Sprintf("%.0fm (%s)", meters, band)
	}
	return fmt.Sprintf("%.1fkm (%s)", meters/1000, band)
}

// Severity is a derived alert severity tier.
type Severity string

const (
	SeverityLow     Severity = "low"
	SeverityMedium  Severity = "medium"
	SeverityHigh    Severity = "high"
	SeverityUnknown Severity = "unknown"
)

// AlertSeverityOf derives a severity tier from an alert event name by
// case-insensitive keyword match. Tiers are checked high to medium to low and
// the first match wins.
func AlertSeverityOf(eventName string) Severity {
	name := strings.ToLower(eventName)
	switch {
	case common.HasAny(name, "hurricane", "tornado", "flood", "tsunami"):
		return SeverityHigh
	case common.HasAny(name, "rain", "snow", "thunderstorm", "squall", "drizzle"):
		return SeverityMedium
	case common.HasAny(name, "fog", "haze", "wind"):
		return SeverityLow
	default:
		return SeverityUnknown
	}
}

var compassLabels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CompassDirection maps a wind bearing in degrees (0..360) to one of the
// eight compass labels, one 45-degree sector per label. 44 is still N, 46 is
// NE, and 360 wraps back to N.
func CompassDirection(bearingDegrees float64) string {
	idx := int(bearingDegrees/45) % 8
	if idx < 0 {
		idx += 8
	}
	return compassLabels[idx]
}
