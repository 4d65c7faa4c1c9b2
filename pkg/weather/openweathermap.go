package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultEndpoint = "https://api.openweathermap.org"

// Fetcher performs a single weather lookup.
type Fetcher interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

// OpenWeatherMap fetches current conditions from the OpenWeatherMap
// "current weather" API.
type OpenWeatherMap struct {
	APIKey    string
	Latitude  float64
	Longitude float64
	Units     string
	Endpoint  string
	Client    *http.Client
}

type owmResponse struct {
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// Fetch implements Fetcher.
func (o *OpenWeatherMap) Fetch(ctx context.Context) (Snapshot, error) {
	if o.APIKey == "" {
		return Snapshot{}, errors.New("weather: api key required")
	}
	endpoint := o.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	units := o.Units
	if units == "" {
		units = "metric"
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(o.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(o.Longitude, 'f', -1, 64))
	q.Set("appid", o.APIKey)
	q.Set("units", units)
	u := strings.TrimRight(endpoint, "/") + "/data/2.5/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("weather: build request: %w", err)
	}
	client := o.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("weather: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Snapshot{}, fmt.Errorf("weather: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Snapshot{}, fmt.Errorf("weather: decode: %w", err)
	}
	if data.Main.Temp == nil {
		return Snapshot{}, errors.New("weather: response missing main.temp")
	}
	s := Snapshot{Temperature: data.Main.Temp}
	if len(data.Weather) > 0 {
		s.Condition = data.Weather[0].Main
	}
	return s, nil
}
