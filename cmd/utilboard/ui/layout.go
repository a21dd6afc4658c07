// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for the dashboard table and surrounding chrome
const (
	// Fixed column widths. The Person column flexes; everything else is
	// sized to its header plus a formatted value.
	RateColumnWidth     = 14 // "Past 12 Months"
	MonthColumnWidth    = 7  // "100.0%"
	EarningsColumnWidth = 23 // "Net Earnings Prev Month"
	MinPersonWidth      = 16
	MaxPersonWidth      = 40

	// Chrome heights around the table
	HeaderHeight    = 2
	FilterBarHeight = 3
	StatusBarHeight = 2
	TableChrome     = 4 // table border + header row

	// Responsive limits
	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 16
	DefaultTableHeight    = 15
)

// fixedColumnsWidth is the width consumed by every column except Person.
func fixedColumnsWidth() int {
	return RateColumnWidth*2 + MonthColumnWidth*3 + EarningsColumnWidth
}

// PersonColumnWidth returns the width for the flexing Person column given the
// terminal width.
func PersonColumnWidth(terminalWidth int) int {
	w := terminalWidth - fixedColumnsWidth() - TableChrome
	if w < MinPersonWidth {
		return MinPersonWidth
	}
	if w > MaxPersonWidth {
		return MaxPersonWidth
	}
	return w
}

// TableHeight returns the row area height for the given terminal height.
func TableHeight(terminalHeight int) int {
	h := terminalHeight - HeaderHeight - FilterBarHeight - StatusBarHeight - TableChrome
	if h < 3 {
		return 3
	}
	return h
}
