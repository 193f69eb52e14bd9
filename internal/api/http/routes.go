package httpapi

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/meteolive/weather-lookup/internal/store"
	"github.com/meteolive/weather-lookup/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, recents store.RecentSearches) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		conditions, err := service.CurrentConditions(c.Context(), q.City)
		if err != nil {
			return mapWeatherError(err)
		}

		recents.Record(q.City)

		return c.JSON(fiber.Map{
			"conditions": conditions,
			"display":    buildDisplay(conditions),
		})
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		days, err := service.Forecast(c.Context(), q.City)
		if err != nil {
			return mapWeatherError(err)
		}

		return c.JSON(fiber.Map{
			"city": q.City,
			"days": buildForecastView(days),
		})
	})

	v1.Get("/searches/recent", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"cities": recents.Get(),
		})
	})
}

// cityQuery holds the single query parameter shared by the weather endpoints.
type cityQuery struct {
	City string `validate:"required"`
}

func parseCityQuery(c *fiber.Ctx) (cityQuery, error) {
	q := cityQuery{City: c.Query("city")}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

func mapWeatherError(err error) error {
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		return fiber.NewError(fiber.StatusNotFound, "city not found")
	case errors.Is(err, weather.ErrUpstreamUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, "weather data unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// alertView pairs an alert with its derived severity and location-local
// start/end times for display.
type alertView struct {
	weather.Alert
	Severity weather.Severity `json:"severity"`
	StartsAt string           `json:"startsAtLocal"`
	EndsAt   string           `json:"endsAtLocal"`
}

// buildDisplay derives the presentation block from a normalized record. All
// wall-clock values are recomputed here from the stored UTC epochs and the
// location's offset; nothing local is ever persisted.
func buildDisplay(cc *weather.CurrentConditions) fiber.Map {
	offset := cc.Location.UTCOffsetSeconds
	localTime := weather.ResolveLocalTime(cc.ObservedAt, offset)

	alerts := make([]alertView, 0, len(cc.Alerts))
	for _, a := range cc.Alerts {
		alerts = append(alerts, alertView{
			Alert:    a,
			Severity: weather.AlertSeverityOf(a.EventName),
			StartsAt: formatLocalClock(a.StartAt, offset),
			EndsAt:   formatLocalClock(a.EndAt, offset),
		})
	}

	return fiber.Map{
		"localTime":     localTime.Format(time.RFC3339),
		"timeOfDay":     weather.TimeOfDayBucket(localTime.Hour()),
		"uvBand":        weather.UVBandOf(cc.UVIndex),
		"windDirection": weather.CompassDirection(cc.WindBearingDeg),
		"visibility":    weather.FormatVisibility(cc.VisibilityMeters),
		"sunriseLocal":  formatLocalClock(cc.SunriseAt, offset),
		"sunsetLocal":   formatLocalClock(cc.SunsetAt, offset),
		"alerts":        alerts,
	}
}

// forecastDayView is a ForecastDay plus its derived precipitation band.
type forecastDayView struct {
	weather.ForecastDay
	PrecipitationBand weather.PrecipBand `json:"precipitationBand"`
}

func buildForecastView(days []weather.ForecastDay) []forecastDayView {
	views := make([]forecastDayView, 0, len(days))
	for _, d := range days {
		views = append(views, forecastDayView{
			ForecastDay:       d,
			PrecipitationBand: weather.PrecipitationBandOf(float64(d.PrecipitationProbabilityPct)),
		})
	}
	return views
}

func formatLocalClock(epochSeconds int64, utcOffsetSeconds int) string {
	return weather.ResolveLocalTime(epochSeconds, utcOffsetSeconds).Format("15:04")
}
