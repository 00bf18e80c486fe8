package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

// CSVRepository reads records from comma separated text with a header row.
type CSVRepository struct {
	name string
	open func() (io.ReadCloser, error)
	l    *logger.Logger
}

// NewCSVFileRepository reads the file at path on every LoadRecords call.
func NewCSVFileRepository(path string, l *logger.Logger) *CSVRepository {
	return &CSVRepository{
		name: "csv:" + path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
		l:    l,
	}
}

// NewCSVRepository reads from r. The reader is consumed by the first LoadRecords call.
func NewCSVRepository(r io.Reader, l *logger.Logger) *CSVRepository {
	return &CSVRepository{
		name: "csv",
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		l:    l,
	}
}

func (c *CSVRepository) Name() string {
	return c.name
}

func (c *CSVRepository) LoadRecords(ctx context.Context) (models.WeatherDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := c.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open csv source: %w", err)
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		rows = append(rows, row)
	}

	dataset, err := parseRows(rows)
	if err != nil {
		return nil, err
	}

	c.l.Debug("loaded csv records", map[string]any{
		"source":  c.name,
		"rows":    len(rows),
		"records": len(dataset),
	})

	return dataset, nil
}
