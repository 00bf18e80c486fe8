package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFahrenheitToCelsius(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{32, 0.0},
		{100, 37.8},
		{-40, -40.0},
		{0, -17.8},
		{212, 100.0},
		{150, 65.6},
		{140, 60.0},
		{260, 126.7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FahrenheitToCelsius(tt.in), "FahrenheitToCelsius(%v)", tt.in)
	}
}

func TestFahrenheitToCelsius_NegativeZero(t *testing.T) {
	got := FahrenheitToCelsius(31.95)
	assert.Equal(t, 0.0, got)
	assert.True(t, math.Signbit(got))
	assert.Equal(t, "-0.0°C", FormatTemperature(got))
}

func TestRound1_HalfToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.25, 0.2},  // exact tie, rounds to even
		{0.75, 0.8},  // exact tie, rounds to even
		{-0.25, -0.2},
		{0.35, 0.3},  // stored just below the tie
		{0.05, 0.1},  // stored just above the tie
		{0.15, 0.1},  // stored just below the tie
		{2.675, 2.7},
		{12.22, 12.2},
		{17.78, 17.8},
		{60, 60},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round1(tt.in), "Round1(%v)", tt.in)
	}
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "0°C", FormatTemperature(0))
	assert.Equal(t, "-5°C", FormatTemperature(-5))
	assert.Equal(t, "12°C", FormatTemperature(int64(12)))
	assert.Equal(t, "0.0°C", FormatTemperature(0.0))
	assert.Equal(t, "60.0°C", FormatTemperature(60.0))
	assert.Equal(t, "126.7°C", FormatTemperature(126.7))
	assert.Equal(t, "-17.8°C", FormatTemperature(-17.8))
	assert.Equal(t, "21.5°C", FormatTemperature(float32(21.5)))
}
