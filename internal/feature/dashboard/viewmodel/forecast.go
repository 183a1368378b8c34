package viewmodel

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"stock_dashboard/internal/feature/forecast/domain/entity"
)

const cardDateLayout = "2006-01-02"

// ForecastCard is one per-horizon price card.
type ForecastCard struct {
	DaysAhead int    `json:"days_ahead"`
	Label     string `json:"label"`
	Price     string `json:"price"`
}

// ForecastCards returns cards for the displayed horizons only, in horizon order.
func ForecastCards(f entity.Forecast) []ForecastCard {
	cards := make([]ForecastCard, 0, len(entity.ForecastHorizons))
	for _, p := range f {
		if !slices.Contains(entity.ForecastHorizons, p.DaysAhead) {
			continue
		}
		unit := "Day"
		if p.DaysAhead > 1 {
			unit = "Days"
		}
		cards = append(cards, ForecastCard{
			DaysAhead: p.DaysAhead,
			Label:     fmt.Sprintf("%d %s Ahead (%s)", p.DaysAhead, unit, p.Date.Format(cardDateLayout)),
			Price:     FormatPrice(p.Price),
		})
	}
	return cards
}

// Tier is a coarse accuracy grade.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

var (
	highAccuracy   = decimal.RequireFromString("0.8")
	mediumAccuracy = decimal.RequireFromString("0.6")
	hundred        = decimal.NewFromInt(100)
)

// Badge is the accuracy badge shown next to a forecast.
type Badge struct {
	Text string `json:"text"`
	Tier Tier   `json:"tier"`
}

// AccuracyBadge renders an accuracy in [0,1] as a percentage such as 91.00%.
func AccuracyBadge(accuracy decimal.Decimal) Badge {
	tier := TierLow
	switch {
	case accuracy.GreaterThanOrEqual(highAccuracy):
		tier = TierHigh
	case accuracy.GreaterThanOrEqual(mediumAccuracy):
		tier = TierMedium
	}
	return Badge{Text: FormatAccuracy(accuracy), Tier: tier}
}

// FormatAccuracy renders 0.91 as 91.00%.
func FormatAccuracy(accuracy decimal.Decimal) string {
	return accuracy.Mul(hundred).StringFixed(2) + "%"
}
