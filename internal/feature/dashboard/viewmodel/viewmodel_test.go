package viewmodel

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/forecast/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRank_PreservesOrderAndNeutralZero(t *testing.T) {
	t.Parallel()

	vol := dec("0.234")
	gainers := []entity.RankedMover{
		{Ticker: "AAPL", PercentChange: dec("5"), CurrentPrice: dec("100"), PredictedPrice: dec("105"), Sector: "Technology", Volatility: &vol},
		{Ticker: "FLAT", PercentChange: dec("0"), CurrentPrice: dec("10"), PredictedPrice: dec("10")},
		{Ticker: "ODD", PercentChange: dec("-0.5"), CurrentPrice: dec("10"), PredictedPrice: dec("9.95")},
	}
	losers := []entity.RankedMover{
		{Ticker: "XOM", PercentChange: dec("-3"), CurrentPrice: dec("100"), PredictedPrice: dec("97")},
	}

	got := Rank(gainers, losers)

	assert.Equal(t, []MoverRow{
		{Ticker: "AAPL", PercentChange: "+5.00%", Bias: BiasGain, CurrentPrice: "$100.00", PredictedPrice: "$105.00", Sector: "Technology", Volatility: "0.23"},
		{Ticker: "FLAT", PercentChange: "0.00%", Bias: BiasNeutral, CurrentPrice: "$10.00", PredictedPrice: "$10.00"},
		{Ticker: "ODD", PercentChange: "-0.50%", Bias: BiasLoss, CurrentPrice: "$10.00", PredictedPrice: "$9.95"},
	}, got.Gainers, "server order kept; a negative row in gainers stays there")
	assert.Equal(t, []MoverRow{
		{Ticker: "XOM", PercentChange: "-3.00%", Bias: BiasLoss, CurrentPrice: "$100.00", PredictedPrice: "$97.00"},
	}, got.Losers)
}

func TestRank_Empty(t *testing.T) {
	t.Parallel()

	got := Rank(nil, nil)
	assert.Empty(t, got.Gainers)
	assert.NotNil(t, got.Gainers)
	assert.NotNil(t, got.Losers)
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"5", "+5.00%"},
		{"-3", "-3.00%"},
		{"0", "0.00%"},
		{"0.004", "+0.00%"},
		{"12.345", "+12.35%"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatPercent(dec(tt.in)))
		})
	}
}

func TestForecastCards(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2025, 1, 15+d, 0, 0, 0, 0, time.UTC) }
	f := entity.Forecast{
		{DaysAhead: 1, Date: day(1), Price: dec("151.25")},
		{DaysAhead: 2, Date: day(2), Price: dec("152")},
		{DaysAhead: 3, Date: day(3), Price: dec("153")},
		{DaysAhead: 7, Date: day(7), Price: dec("160.499")},
	}

	assert.Equal(t, []ForecastCard{
		{DaysAhead: 1, Label: "1 Day Ahead (2025-01-16)", Price: "$151.25"},
		{DaysAhead: 2, Label: "2 Days Ahead (2025-01-17)", Price: "$152.00"},
		{DaysAhead: 7, Label: "7 Days Ahead (2025-01-22)", Price: "$160.50"},
	}, ForecastCards(f))
}

func TestAccuracyBadge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Badge
	}{
		{"0.91", Badge{Text: "91.00%", Tier: TierHigh}},
		{"0.8", Badge{Text: "80.00%", Tier: TierHigh}},
		{"0.7999", Badge{Text: "79.99%", Tier: TierMedium}},
		{"0.6", Badge{Text: "60.00%", Tier: TierMedium}},
		{"0.12345", Badge{Text: "12.35%", Tier: TierLow}},
		{"0", Badge{Text: "0.00%", Tier: TierLow}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AccuracyBadge(dec(tt.in)))
		})
	}
}

func TestComparisonRows(t *testing.T) {
	t.Parallel()

	c := entity.Comparison{
		entity.ModelARIMA:   {Error: "insufficient data"},
		"transformer":       {NextPrediction: dec("149"), Accuracy: dec("0.5")},
		entity.ModelProphet: {NextPrediction: dec("150.2"), Accuracy: dec("0.91")},
		"garch":             {Error: "not trained"},
	}

	assert.Equal(t, []ComparisonRowView{
		{Model: "prophet", NextPrediction: "$150.20", Accuracy: "91.00%"},
		{Model: "arima", Error: "insufficient data"},
		{Model: "garch", Error: "not trained"},
		{Model: "transformer", NextPrediction: "$149.00", Accuracy: "50.00%"},
	}, ComparisonRows(c))
}

func TestMetricRows(t *testing.T) {
	t.Parallel()

	pe := dec("31.5")
	m := entity.MetricSet{
		"volume":         {Text: "1.2M"},
		"pe_ratio":       {Number: &pe},
		"dividend_yield": {Text: "0.7%"},
		"ticker":         {Text: "MSFT"},
	}

	assert.Equal(t, []MetricRow{
		{Key: "dividend_yield", Label: "Dividend Yield", Value: "0.7%"},
		{Key: "pe_ratio", Label: "P/E Ratio", Value: "31.5"},
		{Key: "ticker", Label: "Ticker", Value: "MSFT"},
		{Key: "volume", Label: "Volume", Value: "1.2M"},
	}, MetricRows(m))
}

func TestMetricLabel(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"eps":              "EPS",
		"market_cap":       "Market Cap",
		"fifty_two_week":   "Fifty Two Week",
		"BETA":             "Beta",
		"price-to-book":    "Price To Book",
		"évaluation_score": "Évaluation Score",
		"ÜBER_QUOTE":       "Über Quote",
	}
	for in, want := range tests {
		assert.Equal(t, want, MetricLabel(in), in)
	}
}
