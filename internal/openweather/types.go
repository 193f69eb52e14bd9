package openweather

// Reply shapes for the OpenWeatherMap endpoints we consume. Fields the rest of
// the application cannot live without (dt, temp, coordinates) are pointers
// with a required tag so a degraded payload fails validation instead of
// silently reading as zero. Everything else decodes to its zero value when
// absent and is treated as feature-unavailable downstream.

// CurrentWeatherReply is the payload of GET /data/2.5/weather.
type CurrentWeatherReply struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      *float64 `json:"temp" validate:"required"`
		FeelsLike float64  `json:"feels_like"`
		Humidity  float64  `json:"humidity"`
		Pressure  float64  `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Weather    []ConditionEntry `json:"weather"`
	Visibility float64          `json:"visibility"`
	Clouds     struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Dt       *int64 `json:"dt" validate:"required"`
	Timezone int    `json:"timezone"`
	Coord    *Coord `json:"coord" validate:"required"`
}

// Coord is a lat/lon pair as returned by the weather and geocoding endpoints.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ConditionEntry is one element of the "weather" array present on most
// endpoints.
type ConditionEntry struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// UVIndexReply is the payload of GET /data/2.5/uvi.
type UVIndexReply struct {
	Value float64 `json:"value"`
}

// OneCallReply is the payload of GET /data/3.0/onecall with minutely and
// hourly excluded. Only the alerts block is consumed.
type OneCallReply struct {
	Alerts []AlertEntry `json:"alerts"`
}

// AlertEntry is one severe-weather alert from the onecall endpoint.
type AlertEntry struct {
	SenderName  string `json:"sender_name"`
	Event       string `json:"event"`
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
	Description string `json:"description"`
}

// GeocodeEntry is one match from GET /geo/1.0/direct.
type GeocodeEntry struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ForecastReply is the payload of GET /data/2.5/forecast: a series of
// observations three hours apart. City.Timezone carries the location's UTC
// offset, which day grouping depends on.
type ForecastReply struct {
	City struct {
		Timezone int `json:"timezone"`
	} `json:"city"`
	List []ForecastEntry `json:"list" validate:"dive"`
}

// ForecastEntry is a single 3-hourly forecast observation.
type ForecastEntry struct {
	Dt   *int64 `json:"dt" validate:"required"`
	Main struct {
		Temp     *float64 `json:"temp" validate:"required"`
		Humidity float64  `json:"humidity"`
	} `json:"main"`
	Weather []ConditionEntry `json:"weather"`
	Wind    struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	// Pop is the precipitation probability as a 0..1 fraction.
	Pop float64 `json:"pop"`
}

// DailyForecastReply is the payload of the legacy GET /data/2.5/forecast/daily
// endpoint, already aggregated to one entry per day.
type DailyForecastReply struct {
	List []DailyForecastEntry `json:"list" validate:"dive"`
}

// DailyForecastEntry is a single day of the legacy daily forecast.
type DailyForecastEntry struct {
	Dt   *int64 `json:"dt" validate:"required"`
	Temp struct {
		Day *float64 `json:"day" validate:"required"`
		Min float64  `json:"min"`
		Max float64  `json:"max"`
	} `json:"temp"`
	Humidity float64          `json:"humidity"`
	Weather  []ConditionEntry `json:"weather"`
	Pop      float64          `json:"pop"`
	Speed    float64          `json:"speed"`
}
