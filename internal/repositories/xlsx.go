package repositories

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"weather-report/internal/models"
	"weather-report/pkg/logger"
)

// XLSXRepository reads records from a worksheet laid out like the csv source:
// a header row followed by date, min and max columns. Dates must be text cells.
type XLSXRepository struct {
	name  string
	sheet string
	open  func() (*excelize.File, error)
	l     *logger.Logger
}

// NewXLSXFileRepository reads sheet from the workbook at path. An empty sheet selects the first one.
func NewXLSXFileRepository(path, sheet string, l *logger.Logger) *XLSXRepository {
	return &XLSXRepository{
		name:  "xlsx:" + path,
		sheet: sheet,
		open:  func() (*excelize.File, error) { return excelize.OpenFile(path) },
		l:     l,
	}
}

// NewXLSXRepository reads a workbook from r. The reader is consumed by the first LoadRecords call.
func NewXLSXRepository(r io.Reader, sheet string, l *logger.Logger) *XLSXRepository {
	return &XLSXRepository{
		name:  "xlsx",
		sheet: sheet,
		open:  func() (*excelize.File, error) { return excelize.OpenReader(r) },
		l:     l,
	}
}

func (x *XLSXRepository) Name() string {
	return x.name
}

func (x *XLSXRepository) LoadRecords(ctx context.Context) (models.WeatherDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := x.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := x.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	dataset, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	x.l.Debug("loaded xlsx records", map[string]any{
		"source":  x.name,
		"sheet":   sheet,
		"records": len(dataset),
	})

	return dataset, nil
}
