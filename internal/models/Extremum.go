package models

// Extremum is a minimum or maximum value together with the position it was found at.
// When the value occurs more than once, Index is the last position holding it.
type Extremum struct {
	Value float64 `json:"value" example:"60.0"`
	Index int     `json:"index" example:"3"`
}
