package entity

import "slices"

var (
	// ForecastHorizons are the horizons shown as forecast cards.
	ForecastHorizons = []int{1, 2, 7, 10, 30}
	// CompareDays are the horizons a comparison can be run for.
	CompareDays = []int{1, 2, 7, 10, 30}
	// ExploreDays are the horizons the explore ranking supports.
	ExploreDays = []int{1, 2, 7, 10, 30, 90}
)

// DefaultCompareDays is the comparison horizon before the user picks one.
const DefaultCompareDays = 1

// ValidCompareDays reports whether days is an offered comparison horizon.
func ValidCompareDays(days int) bool { return slices.Contains(CompareDays, days) }

// ValidExploreDays reports whether days is an offered explore horizon.
func ValidExploreDays(days int) bool { return slices.Contains(ExploreDays, days) }
