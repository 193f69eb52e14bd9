package weather

import "errors"

var (
	// ErrCityNotFound is returned when geocoding or the direct name lookup
	// produced no match; the user can fix this by respelling.
	ErrCityNotFound = errors.New("city not found")

	// ErrUpstreamUnavailable is returned when a required upstream fetch
	// failed or returned a payload missing mandatory fields.
	ErrUpstreamUnavailable = errors.New("weather data unavailable")
)
