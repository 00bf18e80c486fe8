package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is any value that can be rendered as a temperature.
type Number interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// FahrenheitToCelsius converts a temperature and rounds it to one decimal place.
func FahrenheitToCelsius(value float64) float64 {
	return Round1((value - 32) * 5 / 9)
}

// Round1 rounds to one decimal place, ties to even.
//
// The value is rounded in decimal from its exact binary expansion, so 0.35
// (stored as 0.34999...) becomes 0.3 and 0.25 becomes 0.2. Scaling by ten and
// calling math.RoundToEven would get the first case wrong.
func Round1(value float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 1, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}

// FormatTemperature renders a value followed by the degree suffix, e.g. "0°C" or "60.0°C".
// Integers render without a fractional part; floats always carry at least one decimal.
func FormatTemperature[T Number](value T) string {
	switch v := any(value).(type) {
	case float64:
		return formatFloat(v, 64) + DegreeSymbol
	case float32:
		return formatFloat(float64(v), 32) + DegreeSymbol
	}
	return fmt.Sprint(value) + DegreeSymbol
}

func formatFloat(v float64, bitSize int) string {
	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func toCelsius(temps []int) []float64 {
	converted := make([]float64, len(temps))
	for i, t := range temps {
		converted[i] = FahrenheitToCelsius(float64(t))
	}
	return converted
}
