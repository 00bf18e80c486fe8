package repositories

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"weather-report/config"
	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

// RecordRepository supplies weather records in source order.
type RecordRepository interface {
	Name() string
	LoadRecords(ctx context.Context) (models.WeatherDataset, error)
}

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// InitRecordRepository builds the repository selected by cfg.Source.
func InitRecordRepository(cfg *config.Config, l *logger.Logger) (RecordRepository, error) {
	src := cfg.Source

	switch src.Kind {
	case config.SourceCSV:
		if src.Path == "" {
			return nil, fmt.Errorf("source.path is required for %s source", src.Kind)
		}
		return NewCSVFileRepository(src.Path, l), nil
	case config.SourceXLSX:
		if src.Path == "" {
			return nil, fmt.Errorf("source.path is required for %s source", src.Kind)
		}
		return NewXLSXFileRepository(src.Path, src.Sheet, l), nil
	case config.SourceOpenMeteo:
		client := &http.Client{Timeout: time.Duration(src.Timeout) * time.Second}
		return NewOpenMeteoRepository(src.BaseURL, src.Lat, src.Lon, src.Days, l, client), nil
		// Add more cases for new sources here
	}

	return nil, fmt.Errorf("unknown source kind %q", src.Kind)
}
