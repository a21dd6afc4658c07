package workforce

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults rendered when a source value is missing or unparseable. Note the
// asymmetry with formatted values: a parsed zero rate would render "0.0%",
// the fallback renders "0%".
const (
	DefaultRate     = "0%"
	DefaultEarnings = "0 €"
)

// FormatRate renders a fraction string ("0.893") as a percentage with one
// decimal place ("89.3%"). Missing or unparseable input falls back to
// DefaultRate rather than failing the row.
func FormatRate(fraction string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(fraction), 64)
	if err != nil {
		return DefaultRate
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

// FormatEarnings renders a euro amount. The value keeps the shortest float
// representation that round-trips, so "3500" stays "3500 €" and "3500.5"
// stays "3500.5 €" with no decimal padding.
func FormatEarnings(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " €"
}

// parseAmount parses a numeric cost string, defaulting to zero when the value
// is absent or malformed.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parsesAsAmount reports whether a source string would survive parsing rather
// than fall back to a default.
func parsesAsAmount(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// earningsFor picks the costs entry recorded under the given "YYYY-MM" key.
// Missing months and malformed amounts both resolve to zero.
func earningsFor(entries []MonthEarnings, key string) float64 {
	for _, e := range entries {
		if e.Month == key {
			return parseAmount(e.Costs)
		}
	}
	return 0
}
