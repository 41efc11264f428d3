// Package weather fetches current conditions and air quality from the
// Open-Meteo APIs. Responses are cached briefly per rounded coordinate so
// repeated comparisons for the same area do not refetch.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/geo"
	"margdarshak.in/internal/transit"
)

const (
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultAQIURL      = "https://air-quality-api.open-meteo.com/v1/air-quality"

	cacheTTL       = 10 * time.Minute
	requestTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20
)

// wmoLabels maps WMO weather codes to human labels.
var wmoLabels = map[int]string{
	0: "Clear Sky", 1: "Mainly Clear", 2: "Partly Cloudy", 3: "Overcast",
	45: "Foggy", 48: "Rime Fog",
	51: "Light Drizzle", 53: "Drizzle", 55: "Heavy Drizzle",
	61: "Light Rain", 63: "Rain", 65: "Heavy Rain",
	71: "Light Snow", 73: "Snow", 75: "Heavy Snow",
	80: "Rain Showers", 81: "Moderate Showers", 82: "Heavy Showers",
	95: "Thunderstorm", 96: "Thunderstorm + Hail", 99: "Severe Thunderstorm",
}

// Report is the combined weather and air quality snapshot for a location.
type Report struct {
	Temperature     float64 `json:"temperature"`
	FeelsLike       float64 `json:"feelsLike"`
	Humidity        float64 `json:"humidity"`
	WindSpeedKmh    float64 `json:"windSpeed"`
	UVIndex         float64 `json:"uvIndex"`
	RainProbability int     `json:"rainProbability"`
	WeatherCode     int     `json:"weatherCode"`
	WeatherLabel    string  `json:"weatherLabel"`
	AQI             int     `json:"aqi"`
	AQILevel        int     `json:"aqiLevel"`
	AQILabel        string  `json:"aqiLabel"`
	PM25            float64 `json:"pm25"`
	PM10            float64 `json:"pm10"`
	Timestamp       string  `json:"timestamp"`
}

// ExplainContext converts the report into the explainer's weather input.
func (r *Report) ExplainContext() *transit.WeatherContext {
	if r == nil {
		return nil
	}
	return &transit.WeatherContext{
		AQI:             r.AQILevel,
		AQILabel:        r.AQILabel,
		RainProbability: r.RainProbability,
	}
}

// aqiLevel buckets a US AQI value into the 1-5 scale the explainer uses.
// Hazardous readings above 300 stay at level 5.
func aqiLevel(usAQI int) (int, string) {
	switch {
	case usAQI <= 0:
		return 0, "N/A"
	case usAQI <= 50:
		return 1, "Good"
	case usAQI <= 100:
		return 2, "Moderate"
	case usAQI <= 150:
		return 3, "Unhealthy (Sensitive)"
	case usAQI <= 200:
		return 4, "Unhealthy"
	case usAQI <= 300:
		return 5, "Very Unhealthy"
	default:
		return 5, "Hazardous"
	}
}

// Service fetches and caches weather reports.
type Service struct {
	forecastURL string
	aqiURL      string
	httpClient  *http.Client
	cache       *gocache.Cache
	clock       clock.Clock
	logger      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithForecastURL overrides the forecast endpoint, used by tests.
func WithForecastURL(u string) Option {
	return func(s *Service) { s.forecastURL = u }
}

// WithAQIURL overrides the air quality endpoint, used by tests.
func WithAQIURL(u string) Option {
	return func(s *Service) { s.aqiURL = u }
}

// NewService builds a weather service.
func NewService(c clock.Clock, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		forecastURL: defaultForecastURL,
		aqiURL:      defaultAQIURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
		cache:       gocache.New(cacheTTL, 2*cacheTTL),
		clock:       c,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		FeelsLike   float64 `json:"apparent_temperature"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		UVIndex     float64 `json:"uv_index"`
	} `json:"current"`
	Hourly struct {
		PrecipitationProbability []int `json:"precipitation_probability"`
	} `json:"hourly"`
}

type aqiResponse struct {
	Current struct {
		USAQI float64 `json:"us_aqi"`
		PM25  float64 `json:"pm2_5"`
		PM10  float64 `json:"pm10"`
	} `json:"current"`
}

// Current returns the weather and AQI snapshot for a point. A cached report
// within the TTL is returned as is. AQI failures degrade to a report without
// air quality; forecast failures fail the call.
func (s *Service) Current(ctx context.Context, p geo.Point) (*Report, error) {
	key := cacheKey(p)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*Report), nil
	}

	forecastURL := fmt.Sprintf(
		"%s?latitude=%.4f&longitude=%.4f&current=temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,uv_index&hourly=precipitation_probability&forecast_days=1&timezone=auto",
		s.forecastURL, p.Lat, p.Lng)

	var forecast forecastResponse
	if err := s.getJSON(ctx, forecastURL, &forecast); err != nil {
		return nil, fmt.Errorf("weather: forecast fetch: %w", err)
	}

	now := s.clock.Now()
	report := &Report{
		Temperature:  forecast.Current.Temperature,
		FeelsLike:    forecast.Current.FeelsLike,
		Humidity:     forecast.Current.Humidity,
		WindSpeedKmh: forecast.Current.WindSpeed,
		UVIndex:      forecast.Current.UVIndex,
		WeatherCode:  forecast.Current.WeatherCode,
		WeatherLabel: wmoLabel(forecast.Current.WeatherCode),
		Timestamp:    now.UTC().Format(time.RFC3339),
	}

	if probs := forecast.Hourly.PrecipitationProbability; len(probs) > 0 {
		h := now.Hour()
		if h < len(probs) {
			report.RainProbability = probs[h]
		} else {
			report.RainProbability = probs[0]
		}
	}

	aqiURL := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current=us_aqi,pm2_5,pm10&timezone=auto",
		s.aqiURL, p.Lat, p.Lng)
	var aqi aqiResponse
	if err := s.getJSON(ctx, aqiURL, &aqi); err != nil {
		s.logger.Warn("aqi fetch failed, continuing without air quality",
			slog.String("error", err.Error()))
	} else {
		report.AQI = int(aqi.Current.USAQI)
		report.AQILevel, report.AQILabel = aqiLevel(report.AQI)
		report.PM25 = aqi.Current.PM25
		report.PM10 = aqi.Current.PM10
	}

	s.cache.Set(key, report, gocache.DefaultExpiration)
	return report, nil
}

func (s *Service) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func wmoLabel(code int) string {
	if label, ok := wmoLabels[code]; ok {
		return label
	}
	return "Unknown"
}

// cacheKey rounds coordinates to roughly a 1 km grid so nearby requests
// share a cache entry.
func cacheKey(p geo.Point) string {
	return fmt.Sprintf("%.2f,%.2f", p.Lat, p.Lng)
}
