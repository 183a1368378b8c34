package handler

import (
	"stock_dashboard/internal/feature/dashboard/transport/http/dto"
	"stock_dashboard/internal/feature/dashboard/usecase"
	"stock_dashboard/internal/feature/dashboard/viewmodel"
	"stock_dashboard/internal/feature/forecast/domain/entity"
)

func present(s usecase.Snapshot) dto.DashboardResponse {
	resp := dto.DashboardResponse{
		Selection: dto.Selection{
			Ticker:      s.Selection.Ticker.String(),
			Model:       string(s.Selection.Model),
			CompareDays: s.Selection.CompareDays,
			Explore:     filters(s.Selection.Explore),
		},
		Forecast: slot(s.Forecast, func(d usecase.ForecastData) dto.Forecast {
			return dto.Forecast{
				Ticker:   d.Ticker.String(),
				Model:    string(d.Model),
				Accuracy: viewmodel.AccuracyBadge(d.Result.Accuracy),
				Cards:    viewmodel.ForecastCards(d.Result.Forecast),
			}
		}),
		Metrics: slot(s.Metrics, func(d usecase.MetricsData) dto.Metrics {
			return dto.Metrics{Ticker: d.Ticker.String(), Rows: viewmodel.MetricRows(d.Metrics)}
		}),
		Comparison: slot(s.Comparison, func(d usecase.ComparisonData) dto.Comparison {
			return dto.Comparison{Ticker: d.Ticker.String(), Days: d.Days, Rows: viewmodel.ComparisonRows(d.Rows)}
		}),
		Explore: slot(s.Explore, func(d usecase.ExploreData) dto.Explore {
			return dto.Explore{Filters: filters(d.Filters), Ranking: viewmodel.Rank(d.Result.Gainers, d.Result.Losers)}
		}),
		Options: options(),
	}

	// Metrics are never shown next to a forecast that failed; their error still is.
	if s.Forecast.Status == usecase.StatusFailed {
		resp.Metrics.Data = nil
	}
	return resp
}

func slot[T, V any](st usecase.RequestState[T], view func(T) V) dto.Slot[V] {
	out := dto.Slot[V]{Status: st.Status.String(), Generation: st.Generation}
	switch st.Status {
	case usecase.StatusSuccess:
		v := view(st.Data)
		out.Data = &v
	case usecase.StatusFailed:
		out.Error = st.Reason
	}
	return out
}

func filters(f entity.ExploreFilters) dto.ExploreFilters {
	return dto.ExploreFilters{Days: f.Days, Model: string(f.Model), Sector: f.Sector}
}

func options() dto.Options {
	models := make([]string, len(entity.Models))
	for i, m := range entity.Models {
		models[i] = string(m)
	}
	return dto.Options{
		Models:      models,
		CompareDays: entity.CompareDays,
		ExploreDays: entity.ExploreDays,
		Sectors:     entity.Sectors,
	}
}
