package report

import (
	"sort"
	"time"

	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
)

// RankMostSold orders items by quantity sold, descending, and truncates to
// limit. Ties keep their incoming order.
func RankMostSold(items []pharmacy.MostSoldMedication, limit int) []pharmacy.MostSoldMedication {
	ranked := make([]pharmacy.MostSoldMedication, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// FillDailyTrends expands sparse daily points into one point per day over
// [from, to], zero-filled where no sales happened. Points on the same day
// are summed; days are truncated to midnight UTC.
func FillDailyTrends(points []pharmacy.SaleTrend, from, to time.Time) []pharmacy.SaleTrend {
	byDay := make(map[time.Time]pharmacy.SaleTrend, len(points))
	for _, point := range points {
		day := truncateToDay(point.SaleDate)
		aggregated := byDay[day]
		aggregated.SaleDate = day
		aggregated.TotalSalesAmount += point.TotalSalesAmount
		aggregated.NumberOfSales += point.NumberOfSales
		byDay[day] = aggregated
	}

	var filled []pharmacy.SaleTrend
	for day := truncateToDay(from); !day.After(truncateToDay(to)); day = day.AddDate(0, 0, 1) {
		point, ok := byDay[day]
		if !ok {
			point = pharmacy.SaleTrend{SaleDate: day}
		}
		filled = append(filled, point)
	}
	return filled
}

// Totals sums revenue and sale count over the points.
func Totals(points []pharmacy.SaleTrend) (amount float64, sales int) {
	for _, point := range points {
		amount += point.TotalSalesAmount
		sales += point.NumberOfSales
	}
	return amount, sales
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
