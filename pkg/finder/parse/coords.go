package parse

import (
	"math"
	"strconv"
	"strings"
)

// ValidCoordinates reports whether lat and lon form a plottable
// coordinate pair: both numerically coercible, neither NaN, latitude in
// [-90, 90] and longitude in [-180, 180], boundaries inclusive. Missing
// values and non-numeric types fail coercion and yield false.
func ValidCoordinates(lat, lon any) bool {
	latF, ok := coerceFloat(lat)
	if !ok {
		return false
	}
	lonF, ok := coerceFloat(lon)
	if !ok {
		return false
	}

	if math.IsNaN(latF) || math.IsNaN(lonF) {
		return false
	}

	return latF >= -90 && latF <= 90 && lonF >= -180 && lonF <= 180
}

// coerceFloat converts numeric types and numeric-looking strings to
// float64. Booleans and other types are not coordinates.
func coerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
