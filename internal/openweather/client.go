package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var validate = validator.New()

// Client talks to the OpenWeatherMap HTTP API. All outbound calls share one
// circuit breaker and one client-side rate limiter; the upstream free tier is
// aggressively rate limited and a burst of 429s would otherwise trip it for
// every caller at once.
type Client struct {
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternative host. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithRateLimit overrides the default request rate ceiling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a Client using the given HTTP client and API key.
func NewClient(httpClient *http.Client, apiKey string, opts ...Option) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	c := &Client{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org",
		httpCfg: HTTPClientConfig{
			Client: httpClient,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentWeather fetches current conditions for a free-text city name. The
// endpoint performs its own geocoding; an unknown city is a 404 and surfaces
// as ErrNotFound.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*CurrentWeatherReply, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("units", "metric")
	values.Set("appid", c.apiKey)

	var reply CurrentWeatherReply
	if err := c.get(ctx, "/data/2.5/weather", values, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// UVIndex fetches the current UV index at a coordinate.
func (c *Client) UVIndex(ctx context.Context, lat, lon float64) (*UVIndexReply, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("appid", c.apiKey)

	var reply UVIndexReply
	if err := c.get(ctx, "/data/2.5/uvi", values, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// OneCall fetches the combined endpoint for a coordinate, trimmed down to the
// blocks we use (alerts). Minutely and hourly series are excluded to keep the
// payload small.
func (c *Client) OneCall(ctx context.Context, lat, lon float64) (*OneCallReply, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("exclude", "minutely,hourly")
	values.Set("units", "metric")
	values.Set("appid", c.apiKey)

	var reply OneCallReply
	if err := c.get(ctx, "/data/3.0/onecall", values, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Geocode resolves a free-text city name to coordinates. An unknown city is
// not an error here: the endpoint returns an empty array.
func (c *Client) Geocode(ctx context.Context, city string) ([]GeocodeEntry, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("limit", "1")
	values.Set("appid", c.apiKey)

	var reply []GeocodeEntry
	if err := c.get(ctx, "/geo/1.0/direct", values, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// Forecast fetches the 3-hourly forecast series for a coordinate.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*ForecastReply, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("units", "metric")
	values.Set("appid", c.apiKey)

	var reply ForecastReply
	if err := c.get(ctx, "/data/2.5/forecast", values, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// DailyForecast fetches the legacy one-entry-per-day forecast for a
// coordinate. It only exists as the fallback when Forecast is unavailable.
func (c *Client) DailyForecast(ctx context.Context, lat, lon float64) (*DailyForecastReply, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("cnt", "7")
	values.Set("units", "metric")
	values.Set("appid", c.apiKey)

	var reply DailyForecastReply
	if err := c.get(ctx, "/data/2.5/forecast/daily", values, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// get performs a rate-limited, resilient GET against path and decodes the
// body into out, validating mandatory fields.
func (c *Client) get(ctx context.Context, path string, values url.Values, out interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("openweather api key is not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := validatePayload(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// validatePayload runs struct validation on decoded payloads. Slice payloads
// (geocoding) validate element-wise.
func validatePayload(out interface{}) error {
	switch v := out.(type) {
	case *[]GeocodeEntry:
		for _, e := range *v {
			if err := validate.Struct(e); err != nil {
				return err
			}
		}
		return nil
	default:
		return validate.Struct(out)
	}
}
