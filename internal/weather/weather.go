// Package weather fetches the current conditions from the Open-Meteo API and
// maps WMO weather codes onto the handful of display buckets the dashboard
// knows how to render.
package weather

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.open-meteo.com"

// Observation is the current-weather slice of the forecast response.
type Observation struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	Code        int     `json:"weathercode"`
	Time        string  `json:"time"`
}

type forecastResponse struct {
	CurrentWeather Observation `json:"current_weather"`
}

type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(10 * time.Second),
	}
}

// NewClientWithBaseURL points the client at a different host; tests use this
// with httptest.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.http.SetBaseURL(baseURL)
	return c
}

// Current performs a single GET for the current weather at the coordinates.
// There is no retry; the caller degrades to "weather unavailable".
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Observation, error) {
	var out forecastResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":        strconv.FormatFloat(lat, 'f', 4, 64),
			"longitude":       strconv.FormatFloat(lon, 'f', 4, 64),
			"current_weather": "true",
		}).
		SetResult(&out).
		Get("/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch weather: status %s", resp.Status())
	}
	return &out.CurrentWeather, nil
}

// Condition is a display bucket for a WMO weather code.
type Condition struct {
	Label string
	Glyph string
}

// Classify maps WMO codes to buckets. The ranges mirror the upstream code
// table: 0 clear, 1-3 clouds, 45-48 fog, 51-67 drizzle/rain, 71-77 snow,
// 80-82 showers, 95+ thunderstorm.
func Classify(code int) Condition {
	switch {
	case code == 0:
		return Condition{Label: "Clear", Glyph: "☀"}
	case code >= 1 && code <= 3:
		return Condition{Label: "Clouds", Glyph: "☁"}
	case code >= 45 && code <= 48:
		return Condition{Label: "Fog", Glyph: "🌫"}
	case code >= 51 && code <= 67:
		return Condition{Label: "Rain", Glyph: "🌧"}
	case code >= 71 && code <= 77:
		return Condition{Label: "Snow", Glyph: "❄"}
	case code >= 80 && code <= 82:
		return Condition{Label: "Showers", Glyph: "🌦"}
	case code >= 95:
		return Condition{Label: "Thunderstorm", Glyph: "⛈"}
	default:
		return Condition{Label: "Unknown", Glyph: "☀"}
	}
}
