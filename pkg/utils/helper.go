package utils

import (
	"strconv"
	"strings"
)

// ParsePositiveInt converts s to an int, falling back to defaultValue
// when s is empty, malformed, zero or negative.
func ParsePositiveInt(s string, defaultValue int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(s)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
