package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"
)

// OpenMeteoRepository fetches a daily forecast in Fahrenheit and rounds it to whole degrees.
type OpenMeteoRepository struct {
	BaseURL    string
	Lat        float64
	Lon        float64
	Days       int
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenMeteoRepository(baseURL string, lat, lon float64, days int, l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}
	return &OpenMeteoRepository{
		BaseURL:    baseURL,
		Lat:        lat,
		Lon:        lon,
		Days:       days,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

// OpenMeteoDaily is the "daily" object of an Open-Meteo response. Missing values are null.
type OpenMeteoDaily struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
}

func (o *OpenMeteoRepository) requestURL() string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(o.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(o.Lon, 'f', -1, 64))
	q.Set("daily", "temperature_2m_max,temperature_2m_min")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("forecast_days", strconv.Itoa(o.Days))
	q.Set("timezone", "auto")
	return o.BaseURL + "?" + q.Encode()
}

func (o *OpenMeteoRepository) LoadRecords(ctx context.Context) (models.WeatherDataset, error) {
	params := map[string]any{"lat": o.Lat, "lon": o.Lon, "days": o.Days}

	o.l.Info("making openmeteo API request", params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.requestURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openmeteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response struct {
		Daily OpenMeteoDaily `json:"daily"`
	}
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	dataset, err := dailyRecordsOpenMeteo(response.Daily)
	if err != nil {
		return nil, fmt.Errorf("failed to build records: %w", err)
	}

	o.l.Info("parsed API response", map[string]any{
		"days": len(dataset),
	})

	return dataset, nil
}

// dailyRecordsOpenMeteo zips the parallel daily arrays into records.
func dailyRecordsOpenMeteo(daily OpenMeteoDaily) (models.WeatherDataset, error) {
	minLength := min(len(daily.Time), len(daily.Temperature2mMax), len(daily.Temperature2mMin))

	dataset := make(models.WeatherDataset, 0, minLength)
	for i := 0; i < minLength; i++ {
		maxTemp, minTemp := daily.Temperature2mMax[i], daily.Temperature2mMin[i]
		if maxTemp == nil || minTemp == nil {
			return nil, fmt.Errorf("%w: missing temperature for %s", ErrMalformedRow, daily.Time[i])
		}

		dataset = append(dataset, models.WeatherRecord{
			Date:     daily.Time[i],
			MinTempF: int(math.Round(*minTemp)),
			MaxTempF: int(math.Round(*maxTemp)),
		})
	}

	return dataset, nil
}
