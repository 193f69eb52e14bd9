package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/meteolive/weather-lookup/internal/openweather"
)

// Service turns city names into normalized weather records. Each call runs
// its own fetch sequence and builds a fresh, independent result; nothing is
// shared or reused between searches.
type Service struct {
	upstream Upstream
}

// NewService creates a new Service on top of the given upstream.
func NewService(upstream Upstream) *Service {
	return &Service{upstream: upstream}
}

// CurrentConditions resolves a city name to its normalized current weather.
// The name lookup is the one mandatory fetch; once its coordinates are known,
// the UV index and active alerts are fetched concurrently on a best-effort
// basis, and a failure in either leaves only that field absent.
func (s *Service) CurrentConditions(ctx context.Context, city string) (*CurrentConditions, error) {
	raw, err := s.upstream.CurrentWeather(ctx, city)
	if err != nil {
		if errors.Is(err, openweather.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrCityNotFound, city)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	lat, lon := raw.Coord.Lat, raw.Coord.Lon

	var (
		wg     sync.WaitGroup
		uv     *float64
		alerts []Alert
	)

	wg.Add(2)
	go func() {
		defer wg.Done()

		reply, err := s.upstream.UVIndex(ctx, lat, lon)
		if err != nil {
			log.Printf("uv index unavailable for %q: %v", city, err)
			return
		}
		v := reply.Value
		uv = &v
	}()
	go func() {
		defer wg.Done()

		reply, err := s.upstream.OneCall(ctx, lat, lon)
		if err != nil {
			log.Printf("alerts unavailable for %q: %v", city, err)
			return
		}
		alerts = NormalizeAlerts(reply.Alerts)
	}()
	wg.Wait()

	conditions := normalizeCurrent(raw, uv, alerts)
	return &conditions, nil
}

// Forecast resolves a city name to up to five normalized forecast days. The
// coordinate comes from a dedicated geocoding lookup; the fine-grained
// 3-hourly series is preferred and collapsed per local calendar day, with the
// legacy daily endpoint as the fallback when the primary one is unavailable.
// The fallback is only attempted after the primary failure is observed.
func (s *Service) Forecast(ctx context.Context, city string) ([]ForecastDay, error) {
	matches, err := s.upstream.Geocode(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}
	lat, lon := matches[0].Lat, matches[0].Lon

	reply, primaryErr := s.upstream.Forecast(ctx, lat, lon)
	if primaryErr == nil {
		return buildForecastDays(reply.List, reply.City.Timezone), nil
	}
	log.Printf("3-hourly forecast unavailable for %q, falling back to daily: %v", city, primaryErr)

	daily, err := s.upstream.DailyForecast(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: primary: %v; fallback: %v", ErrUpstreamUnavailable, primaryErr, err)
	}
	return daysFromLegacy(daily.List), nil
}
