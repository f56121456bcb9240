package gateway

import (
	"context"
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/report"
	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

type saleTrendsHandler struct {
	pharmacies *pharmacy.Service
	clock      pkgtime.Clock
	logger     log.Logger
}

// NewSaleTrendsHandler serves the manager dashboard's daily sales chart:
// one point per day over the window, zero-filled, with window totals.
func NewSaleTrendsHandler(pharmacies *pharmacy.Service, clock pkgtime.Clock, logger log.Logger) pkghttp.Handler {
	return saleTrendsHandler{pharmacies: pharmacies, clock: clock, logger: logger}
}

func (h saleTrendsHandler) Method() string {
	return http.MethodGet
}

func (h saleTrendsHandler) Path() string {
	return "/manager/sales/trends"
}

func (h saleTrendsHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		days, err := pkghttp.Parse(
			pkghttp.OptionalQueryParameter[int]("days", pharmacy.DefaultTrendDays),
			r, nil,
		)
		if err != nil {
			return err
		}

		ctx := r.Context()
		trends, err := buildTrendReport(ctx, h.pharmacies, h.clock, days)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetJSONBody(trends)
		return nil
	}
}

type trendReport struct {
	Points           []pharmacy.SaleTrend `json:"points"`
	TotalSalesAmount float64              `json:"total_sales_amount"`
	TotalSales       int                  `json:"total_sales"`
}

func buildTrendReport(
	ctx context.Context,
	pharmacies *pharmacy.Service,
	clock pkgtime.Clock,
	days int,
) (trendReport, error) {
	if days <= 0 {
		days = pharmacy.DefaultTrendDays
	}

	points, err := pharmacies.SaleTrends(ctx, days)
	if err != nil {
		return trendReport{}, err
	}

	now := clock.Now(ctx)
	filled := report.FillDailyTrends(points, now.AddDate(0, 0, -(days-1)), now)
	amount, sales := report.Totals(filled)

	return trendReport{
		Points:           filled,
		TotalSalesAmount: amount,
		TotalSales:       sales,
	}, nil
}
