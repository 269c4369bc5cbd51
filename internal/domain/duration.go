package domain

import (
	"fmt"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

const zeroDurationLabel = "0 seconds"

// FormatDuration breaks total seconds into "N days N hours N mins N secs",
// dropping zero components. Negative totals use Go's truncating division, so
// every component carries the sign.
func FormatDuration(total int64) string {
	components := []struct {
		value    int64
		singular string
		plural   string
	}{
		{value: total / secondsPerDay, singular: "day", plural: "days"},
		{value: (total / secondsPerHour) % 24, singular: "hour", plural: "hours"},
		{value: (total / secondsPerMinute) % 60, singular: "min", plural: "mins"},
		{value: total % 60, singular: "sec", plural: "secs"},
	}

	parts := make([]string, 0, len(components))
	for _, c := range components {
		if c.value == 0 {
			continue
		}
		unit := c.plural
		if c.value == 1 {
			unit = c.singular
		}
		parts = append(parts, fmt.Sprintf("%d %s", c.value, unit))
	}

	return strings.Join(parts, " ")
}

// DisplayDuration is FormatDuration with "0 seconds" for an empty result.
func DisplayDuration(total int64) string {
	if formatted := FormatDuration(total); formatted != "" {
		return formatted
	}

	return zeroDurationLabel
}
