package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"weather-report/internal/models"
)

// ErrMalformedRow is returned for a data row that cannot be turned into a record.
var ErrMalformedRow = errors.New("malformed row")

const recordColumns = 3

// isBlankRow reports whether every field of row is empty.
func isBlankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// parseRow converts [date, min, max] into a record. rowNum is the 1-based row position and only used in errors.
func parseRow(row []string, rowNum int) (models.WeatherRecord, error) {
	if len(row) < recordColumns {
		return models.WeatherRecord{}, fmt.Errorf("%w: row %d: expected %d columns, got %d", ErrMalformedRow, rowNum, recordColumns, len(row))
	}

	minTemp, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return models.WeatherRecord{}, fmt.Errorf("%w: row %d: min temperature %q: %v", ErrMalformedRow, rowNum, row[1], err)
	}

	maxTemp, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return models.WeatherRecord{}, fmt.Errorf("%w: row %d: max temperature %q: %v", ErrMalformedRow, rowNum, row[2], err)
	}

	return models.WeatherRecord{
		Date:     strings.TrimSpace(row[0]),
		MinTempF: minTemp,
		MaxTempF: maxTemp,
	}, nil
}

// parseRows drops the header row and blank rows and converts the rest.
func parseRows(rows [][]string) (models.WeatherDataset, error) {
	dataset := models.WeatherDataset{}
	if len(rows) == 0 {
		return dataset, nil
	}

	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		record, err := parseRow(row, i+2)
		if err != nil {
			return nil, err
		}
		dataset = append(dataset, record)
	}

	return dataset, nil
}
