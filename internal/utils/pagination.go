// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"fmt"
	"strconv"
)

// ParseBoundedInt parses a query-string integer with strict bounds.
//
// An empty string yields the default. A non-integer value or a value outside
// [min, max] yields an error so callers can reject the request instead of
// silently coercing it.
//
// Example:
//
//	n, err := utils.ParseBoundedInt("", 50, 1, 100)   // 50, nil
//	n, err = utils.ParseBoundedInt("25", 50, 1, 100)  // 25, nil
//	n, err = utils.ParseBoundedInt("0", 50, 1, 100)   // 0, error
//	n, err = utils.ParseBoundedInt("x", 50, 1, 100)   // 0, error
func ParseBoundedInt(s string, def, min, max int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("must be an integer")
	}
	if n < min || n > max {
		return 0, fmt.Errorf("must be between %d and %d", min, max)
	}
	return n, nil
}
