package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// RoundToDecimal rounds half-up to one decimal place
func RoundToDecimal(value float64) float64 {
	if value < 0 {
		return -RoundToDecimal(-value)
	}
	return float64(int64(value*10+0.5)) / 10
}
