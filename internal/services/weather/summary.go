package weather

import (
	"fmt"
	"strings"

	"weather-report/internal/models"
)

// GenerateSummary renders the period overview: day count, the lowest and
// highest temperature with the day they occur on, and the average low and high.
func GenerateSummary(dataset models.WeatherDataset) (string, error) {
	if len(dataset) == 0 {
		return NoDataMessage, nil
	}

	minsC := toCelsius(dataset.MinTemps())
	maxsC := toCelsius(dataset.MaxTemps())

	lowest, _ := FindMin(minsC)
	highest, _ := FindMax(maxsC)

	lowestOn, err := FormatDate(dataset[lowest.Index].Date)
	if err != nil {
		return "", fmt.Errorf("failed to format date of lowest temperature: %w", err)
	}

	highestOn, err := FormatDate(dataset[highest.Index].Date)
	if err != nil {
		return "", fmt.Errorf("failed to format date of highest temperature: %w", err)
	}

	return fmt.Sprintf(overviewTemplate,
		len(dataset),
		FormatTemperature(lowest.Value), lowestOn,
		FormatTemperature(highest.Value), highestOn,
		FormatTemperature(Round1(Mean(minsC))),
		FormatTemperature(Round1(Mean(maxsC))),
	), nil
}

// GenerateDailySummary renders one block per record, in dataset order.
func GenerateDailySummary(dataset models.WeatherDataset) (string, error) {
	if len(dataset) == 0 {
		return NoDataMessage, nil
	}

	var b strings.Builder
	for i, record := range dataset {
		date, err := FormatDate(record.Date)
		if err != nil {
			return "", fmt.Errorf("failed to format date of record %d: %w", i, err)
		}

		fmt.Fprintf(&b, dailyTemplate,
			date,
			FormatTemperature(FahrenheitToCelsius(float64(record.MinTempF))),
			FormatTemperature(FahrenheitToCelsius(float64(record.MaxTempF))),
		)
	}

	return b.String(), nil
}
