package gateway

import (
	"bytes"
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/export"
	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

type exportTrendsHandler struct {
	pharmacies *pharmacy.Service
	clock      pkgtime.Clock
	logger     log.Logger
}

// NewExportTrendsHandler downloads the zero-filled daily sales series as CSV.
func NewExportTrendsHandler(pharmacies *pharmacy.Service, clock pkgtime.Clock, logger log.Logger) pkghttp.Handler {
	return exportTrendsHandler{pharmacies: pharmacies, clock: clock, logger: logger}
}

func (h exportTrendsHandler) Method() string {
	return http.MethodGet
}

func (h exportTrendsHandler) Path() string {
	return "/manager/sales/trends/export"
}

func (h exportTrendsHandler) HTTPHandler() pkghttp.HandlerFunc {
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

		var buf bytes.Buffer
		if err = export.WriteCSV(&buf, trends.Points); err != nil {
			return err
		}

		w.SetHeader("Content-Disposition", `attachment; filename="sales_trends.csv"`).
			SetBody("text/csv", buf.Bytes())
		return nil
	}
}
