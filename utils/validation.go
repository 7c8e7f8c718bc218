package utils

import (
	"math"
	"strconv"
	"strings"
)

// ToInt coerces a decoded JSON value to an int. Numeric strings are accepted
// the same way plain numbers are; fractional numbers are rejected.
func ToInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ToId coerces a decoded JSON value to a positive record identifier.
func ToId(value interface{}) (uint, bool) {
	n, ok := ToInt(value)
	if !ok || n <= 0 {
		return 0, false
	}
	return uint(n), true
}
