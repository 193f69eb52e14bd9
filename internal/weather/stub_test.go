package weather

import (
	"context"
	"errors"

	"github.com/meteolive/weather-lookup/internal/openweather"
)

var errStubDown = errors.New("stub: endpoint down")

// stubUpstream lets each test script the six upstream endpoints. A nil
// function means the endpoint is down.
type stubUpstream struct {
	current  func(city string) (*openweather.CurrentWeatherReply, error)
	uv       func(lat, lon float64) (*openweather.UVIndexReply, error)
	onecall  func(lat, lon float64) (*openweather.OneCallReply, error)
	geocode  func(city string) ([]openweather.GeocodeEntry, error)
	forecast func(lat, lon float64) (*openweather.ForecastReply, error)
	daily    func(lat, lon float64) (*openweather.DailyForecastReply, error)
}

func (s *stubUpstream) CurrentWeather(_ context.Context, city string) (*openweather.CurrentWeatherReply, error) {
	if s.current == nil {
		return nil, errStubDown
	}
	return s.current(city)
}

func (s *stubUpstream) UVIndex(_ context.Context, lat, lon float64) (*openweather.UVIndexReply, error) {
	if s.uv == nil {
		return nil, errStubDown
	}
	return s.uv(lat, lon)
}

func (s *stubUpstream) OneCall(_ context.Context, lat, lon float64) (*openweather.OneCallReply, error) {
	if s.onecall == nil {
		return nil, errStubDown
	}
	return s.onecall(lat, lon)
}

func (s *stubUpstream) Geocode(_ context.Context, city string) ([]openweather.GeocodeEntry, error) {
	if s.geocode == nil {
		return nil, errStubDown
	}
	return s.geocode(city)
}

func (s *stubUpstream) Forecast(_ context.Context, lat, lon float64) (*openweather.ForecastReply, error) {
	if s.forecast == nil {
		return nil, errStubDown
	}
	return s.forecast(lat, lon)
}

func (s *stubUpstream) DailyForecast(_ context.Context, lat, lon float64) (*openweather.DailyForecastReply, error) {
	if s.daily == nil {
		return nil, errStubDown
	}
	return s.daily(lat, lon)
}

var _ Upstream = (*stubUpstream)(nil)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

// currentReply builds a fully-populated current-weather payload for a city in
// a +2h zone.
func currentReply(name string) *openweather.CurrentWeatherReply {
	reply := &openweather.CurrentWeatherReply{}
	reply.Name = name
	reply.Sys.Country = "FR"
	reply.Sys.Sunrise = 1717993800
	reply.Sys.Sunset = 1718051400
	reply.Main.Temp = f64(21.4)
	reply.Main.FeelsLike = 20.6
	reply.Main.Humidity = 64
	reply.Main.Pressure = 1015
	reply.Wind.Speed = 3.7
	reply.Wind.Deg = 220
	reply.Weather = []openweather.ConditionEntry{{Description: "scattered clouds", Icon: "03d"}}
	reply.Visibility = 10000
	reply.Clouds.All = 40
	reply.Dt = i64(1718020800)
	reply.Timezone = 2 * 3600
	reply.Coord = &openweather.Coord{Lat: 48.85, Lon: 2.35}
	return reply
}

// forecastEntry builds a 3-hourly sample.
func forecastEntry(dt int64, temp float64, pop float64) openweather.ForecastEntry {
	var e openweather.ForecastEntry
	e.Dt = i64(dt)
	e.Main.Temp = f64(temp)
	e.Main.Humidity = 55
	e.Weather = []openweather.ConditionEntry{{Description: "light rain", Icon: "10d"}}
	e.Wind.Speed = 4.2
	e.Pop = pop
	return e
}
