package models

// WeatherRecord is one observation day. Temperatures are whole degrees Fahrenheit.
type WeatherRecord struct {
	Date     string `json:"date" example:"2021-07-06"`
	MinTempF int    `json:"min_temp_f" example:"49"`
	MaxTempF int    `json:"max_temp_f" example:"67"`
}

// WeatherDataset is an ordered sequence of records. The position of a record
// identifies its day, so callers must not reorder it.
type WeatherDataset []WeatherRecord

// MinTemps returns the minimum temperatures in dataset order.
func (d WeatherDataset) MinTemps() []int {
	temps := make([]int, len(d))
	for i, r := range d {
		temps[i] = r.MinTempF
	}
	return temps
}

// MaxTemps returns the maximum temperatures in dataset order.
func (d WeatherDataset) MaxTemps() []int {
	temps := make([]int, len(d))
	for i, r := range d {
		temps[i] = r.MaxTempF
	}
	return temps
}
