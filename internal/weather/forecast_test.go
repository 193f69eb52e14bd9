package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/meteolive/weather-lookup/internal/openweather"
)

const plus9h = 9 * 3600

// TestBuildForecastDaysGroupsByLocalDate feeds samples straddling UTC
// midnight to a +9h location. Both must land in the same local day, today's
// leading partial group must be dropped, and min/max must cover every sample
// of the day.
func TestBuildForecastDaysGroupsByLocalDate(t *testing.T) {
	list := []openweather.ForecastEntry{
		// Local 2024-03-10 (today): dropped.
		forecastEntry(1710050400, 10, 0), // 2024-03-10T06:00Z, local 15:00
		// Local 2024-03-11.
		forecastEntry(1710113400, 12, 0.1),  // 2024-03-10T23:30Z, local 08:30
		forecastEntry(1710117000, 18, 0.2),  // 2024-03-11T00:30Z, local 09:30
		forecastEntry(1710126000, 9, 0.35),  // 2024-03-11T03:00Z, local 12:00
		forecastEntry(1710147600, 15, 0.9),  // 2024-03-11T09:00Z, local 18:00
		// Local 2024-03-12: single early-morning sample.
		forecastEntry(1710180000, 20, 0), // 2024-03-11T18:00Z, local 03:00
	}

	days := buildForecastDays(list, plus9h)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d: %+v", len(days), days)
	}

	first := days[0]
	// The representative is the local-noon sample, even though warmer and
	// colder samples exist either side of UTC midnight.
	if first.Date != 1710126000 {
		t.Errorf("representative date = %d, want 1710126000", first.Date)
	}
	if first.Temperature.RepresentativeC != 9 {
		t.Errorf("representative temp = %v, want 9", first.Temperature.RepresentativeC)
	}
	if first.Temperature.MinC != 9 || first.Temperature.MaxC != 18 {
		t.Errorf("min/max = %v/%v, want 9/18", first.Temperature.MinC, first.Temperature.MaxC)
	}
	if first.PrecipitationProbabilityPct != 35 {
		t.Errorf("pop = %d, want 35", first.PrecipitationProbabilityPct)
	}

	// A day with no early-afternoon sample falls back to its first sample.
	second := days[1]
	if second.Date != 1710180000 {
		t.Errorf("fallback representative date = %d, want 1710180000", second.Date)
	}
	if second.Temperature.MinC != 20 || second.Temperature.MaxC != 20 || second.Temperature.RepresentativeC != 20 {
		t.Errorf("single-sample day range = %+v", second.Temperature)
	}

	if days[0].Date >= days[1].Date {
		t.Error("days are not in chronological order")
	}
}

// TestBuildForecastDaysMinMaxInvariant checks min <= representative <= max
// for the canonical [12, 18, 9, 15] sample set no matter which sample is
// representative.
func TestBuildForecastDaysMinMaxInvariant(t *testing.T) {
	// Offset 0; all samples on 2024-03-11 UTC, none at local noon..15.
	list := []openweather.ForecastEntry{
		forecastEntry(1710028800, 5, 0), // today, dropped
		forecastEntry(1710118800, 12, 0),
		forecastEntry(1710129600, 18, 0),
		forecastEntry(1710172800, 9, 0),
		forecastEntry(1710183600, 15, 0),
	}

	days := buildForecastDays(list, 0)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}

	d := days[0]
	if d.Temperature.MinC != 9 || d.Temperature.MaxC != 18 {
		t.Fatalf("min/max = %v/%v, want 9/18", d.Temperature.MinC, d.Temperature.MaxC)
	}
	if d.Temperature.RepresentativeC < d.Temperature.MinC || d.Temperature.RepresentativeC > d.Temperature.MaxC {
		t.Fatalf("representative %v outside [%v, %v]",
			d.Temperature.RepresentativeC, d.Temperature.MinC, d.Temperature.MaxC)
	}
}

func TestBuildForecastDaysCapsAtFive(t *testing.T) {
	var list []openweather.ForecastEntry
	// Nine consecutive days with a sample at 12:00 UTC each.
	base := int64(1710072000) // 2024-03-10T12:00:00Z
	for i := 0; i < 9; i++ {
		list = append(list, forecastEntry(base+int64(i)*86400, float64(10+i), 0))
	}

	days := buildForecastDays(list, 0)
	if len(days) != maxForecastDays {
		t.Fatalf("expected %d days, got %d", maxForecastDays, len(days))
	}
	// First output day is the day after the dropped leading group.
	if days[0].Date != base+86400 {
		t.Errorf("first day = %d, want %d", days[0].Date, base+86400)
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].Date >= days[i].Date {
			t.Fatalf("days out of order at %d", i)
		}
	}
}

func TestBuildForecastDaysEmptyInput(t *testing.T) {
	if days := buildForecastDays(nil, 0); len(days) != 0 {
		t.Fatalf("expected no days, got %v", days)
	}
}

func TestPopToPctRoundsNotTruncates(t *testing.T) {
	tests := []struct {
		pop  float64
		want int
	}{
		{0, 0},
		{0.149, 15},
		{0.35, 35},
		{0.678, 68},
		{1, 100},
	}
	for _, tc := range tests {
		if got := popToPct(tc.pop); got != tc.want {
			t.Errorf("popToPct(%v) = %d, want %d", tc.pop, got, tc.want)
		}
	}
}

func dailyEntry(dt int64, day, min, max float64) openweather.DailyForecastEntry {
	var e openweather.DailyForecastEntry
	e.Dt = i64(dt)
	e.Temp.Day = f64(day)
	e.Temp.Min = min
	e.Temp.Max = max
	e.Humidity = 60
	e.Weather = []openweather.ConditionEntry{{Description: "overcast clouds", Icon: "04d"}}
	e.Pop = 0.25
	e.Speed = 6.1
	return e
}

// TestForecastFallbackToLegacyDaily simulates the 3-hourly endpoint being
// down: the legacy endpoint must be used, its leading "today" entry skipped,
// and at most five following days mapped through in order.
func TestForecastFallbackToLegacyDaily(t *testing.T) {
	var legacy []openweather.DailyForecastEntry
	base := int64(1710072000)
	for i := 0; i < 7; i++ {
		legacy = append(legacy, dailyEntry(base+int64(i)*86400, float64(15+i), float64(10+i), float64(20+i)))
	}

	forecastCalled := false
	dailyCalled := false
	upstream := &stubUpstream{
		geocode: func(city string) ([]openweather.GeocodeEntry, error) {
			return []openweather.GeocodeEntry{{Name: "Paris", Country: "FR", Lat: 48.85, Lon: 2.35}}, nil
		},
		forecast: func(lat, lon float64) (*openweather.ForecastReply, error) {
			forecastCalled = true
			if dailyCalled {
				t.Error("fallback must not be issued before the primary failure is observed")
			}
			return nil, openweather.ErrUnavailable
		},
		daily: func(lat, lon float64) (*openweather.DailyForecastReply, error) {
			dailyCalled = true
			return &openweather.DailyForecastReply{List: legacy}, nil
		},
	}

	days, err := NewService(upstream).Forecast(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !forecastCalled || !dailyCalled {
		t.Fatal("expected both primary and fallback endpoints to be hit")
	}

	if len(days) != maxForecastDays {
		t.Fatalf("expected %d days, got %d", maxForecastDays, len(days))
	}
	// Today (first legacy entry) skipped: first output is base+1 day.
	if days[0].Date != base+86400 {
		t.Errorf("first day = %d, want %d", days[0].Date, base+86400)
	}
	if days[0].Temperature.RepresentativeC != 16 || days[0].Temperature.MinC != 11 || days[0].Temperature.MaxC != 21 {
		t.Errorf("legacy mapping wrong: %+v", days[0].Temperature)
	}
	if days[0].PrecipitationProbabilityPct != 25 {
		t.Errorf("legacy pop = %d, want 25", days[0].PrecipitationProbabilityPct)
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].Date >= days[i].Date {
			t.Fatalf("days out of order at %d", i)
		}
	}
}

func TestForecastPrimaryPathSkipsFallback(t *testing.T) {
	upstream := &stubUpstream{
		geocode: func(city string) ([]openweather.GeocodeEntry, error) {
			return []openweather.GeocodeEntry{{Lat: 48.85, Lon: 2.35}}, nil
		},
		forecast: func(lat, lon float64) (*openweather.ForecastReply, error) {
			reply := &openweather.ForecastReply{List: []openweather.ForecastEntry{
				forecastEntry(1710072000, 10, 0),
				forecastEntry(1710158400, 12, 0),
			}}
			return reply, nil
		},
		daily: func(lat, lon float64) (*openweather.DailyForecastReply, error) {
			t.Error("fallback hit although the primary endpoint succeeded")
			return nil, openweather.ErrUnavailable
		},
	}

	if _, err := NewService(upstream).Forecast(context.Background(), "Paris"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestForecastCityNotFound(t *testing.T) {
	upstream := &stubUpstream{
		geocode: func(city string) ([]openweather.GeocodeEntry, error) {
			return nil, nil
		},
	}

	_, err := NewService(upstream).Forecast(context.Background(), "Nowheresville")
	if !errors.Is(err, ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestForecastBothSourcesDown(t *testing.T) {
	upstream := &stubUpstream{
		geocode: func(city string) ([]openweather.GeocodeEntry, error) {
			return []openweather.GeocodeEntry{{Lat: 1, Lon: 2}}, nil
		},
	}

	_, err := NewService(upstream).Forecast(context.Background(), "Paris")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestForecastGeocodeFailure(t *testing.T) {
	upstream := &stubUpstream{}

	_, err := NewService(upstream).Forecast(context.Background(), "Paris")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
