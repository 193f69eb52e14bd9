package weather

import (
	"context"

	"github.com/meteolive/weather-lookup/internal/openweather"
)

// Upstream is the transport collaborator the normalizers consume. It hands
// back already-parsed payloads; connection management, timeouts and retry
// policy all live behind it.
type Upstream interface {
	CurrentWeather(ctx context.Context, city string) (*openweather.CurrentWeatherReply, error)
	UVIndex(ctx context.Context, lat, lon float64) (*openweather.UVIndexReply, error)
	OneCall(ctx context.Context, lat, lon float64) (*openweather.OneCallReply, error)
	Geocode(ctx context.Context, city string) ([]openweather.GeocodeEntry, error)
	Forecast(ctx context.Context, lat, lon float64) (*openweather.ForecastReply, error)
	DailyForecast(ctx context.Context, lat, lon float64) (*openweather.DailyForecastReply, error)
}
