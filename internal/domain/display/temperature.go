package display

import (
	"math"
	"strconv"
)

// MinTemperature renders the low of the day rounded down.
func MinTemperature(value float64) string {
	return strconv.Itoa(int(math.Floor(value))) + "°"
}

// MaxTemperature renders the high of the day rounded up.
func MaxTemperature(value float64) string {
	return strconv.Itoa(int(math.Ceil(value))) + "°"
}
