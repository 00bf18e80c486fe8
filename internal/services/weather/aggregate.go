package weather

import (
	"gonum.org/v1/gonum/floats"

	"weather-report/internal/models"
)

// Mean returns the arithmetic mean of values.
// Callers must pass a non-empty slice; an empty one yields NaN.
// Values are summed left to right; the rounded average depends on that order.
func Mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// FindMin returns the smallest value and the last index it occurs at.
// ok is false for an empty slice.
func FindMin(values []float64) (extremum models.Extremum, ok bool) {
	if len(values) == 0 {
		return models.Extremum{}, false
	}
	return lastOccurrence(values, floats.Min(values)), true
}

// FindMax returns the largest value and the last index it occurs at.
// ok is false for an empty slice.
func FindMax(values []float64) (extremum models.Extremum, ok bool) {
	if len(values) == 0 {
		return models.Extremum{}, false
	}
	return lastOccurrence(values, floats.Max(values)), true
}

// lastOccurrence scans from the end so ties resolve to the latest day.
func lastOccurrence(values []float64, target float64) models.Extremum {
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] == target {
			return models.Extremum{Value: target, Index: i}
		}
	}
	return models.Extremum{Value: target, Index: -1}
}
