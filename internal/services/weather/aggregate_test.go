package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-report/internal/models"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 62.8, Round1(Mean([]float64{65.6, 60.0})))
	assert.InDelta(t, -1.5, Mean([]float64{-1, -2}), 1e-12)
	assert.Equal(t, 7.0, Mean([]float64{7}))
}

func TestMean_SumsInOrder(t *testing.T) {
	// (((66.1 + -13.9) + 21.1) + 36.1) / 4 lands just above 27.35
	assert.Equal(t, 27.35, Mean([]float64{66.1, -13.9, 21.1, 36.1}))
	assert.Equal(t, 27.4, Round1(Mean([]float64{66.1, -13.9, 21.1, 36.1})))
}

func TestMean_EmptyIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestFindMin(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   models.Extremum
	}{
		{"last of tied minimum", []float64{1, 2, 2, 1}, models.Extremum{Value: 1, Index: 3}},
		{"single value", []float64{5}, models.Extremum{Value: 5, Index: 0}},
		{"negative", []float64{0, -1.1, -1.1, 5}, models.Extremum{Value: -1.1, Index: 2}},
		{"minimum first", []float64{-3, 2, 8}, models.Extremum{Value: -3, Index: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMin(tt.values)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindMax(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   models.Extremum
	}{
		{"last of tied maximum", []float64{3, 9, 9, 3}, models.Extremum{Value: 9, Index: 2}},
		{"all equal", []float64{4, 4, 4}, models.Extremum{Value: 4, Index: 2}},
		{"maximum last", []float64{1, 2, 3}, models.Extremum{Value: 3, Index: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMax(tt.values)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindExtremum_Empty(t *testing.T) {
	_, ok := FindMin(nil)
	assert.False(t, ok)

	_, ok = FindMax([]float64{})
	assert.False(t, ok)
}

func TestFindExtremum_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2, 1}
	FindMin(values)
	FindMax(values)
	assert.Equal(t, []float64{3, 1, 2, 1}, values)
}
