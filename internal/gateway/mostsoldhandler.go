package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/report"
	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type mostSoldHandler struct {
	pharmacies *pharmacy.Service
	logger     log.Logger
}

// NewMostSoldHandler serves the manager dashboard's top-sellers ranking.
func NewMostSoldHandler(pharmacies *pharmacy.Service, logger log.Logger) pkghttp.Handler {
	return mostSoldHandler{pharmacies: pharmacies, logger: logger}
}

func (h mostSoldHandler) Method() string {
	return http.MethodGet
}

func (h mostSoldHandler) Path() string {
	return "/manager/sales"
}

func (h mostSoldHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		limit, err := pkghttp.Parse(
			pkghttp.OptionalQueryParameter[int]("most_sold", pharmacy.DefaultMostSoldLimit),
			r, nil,
		)
		if err != nil {
			return err
		}

		ctx := r.Context()
		items, err := h.pharmacies.MostSold(ctx, limit)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetJSONBody(report.RankMostSold(items, limit))
		return nil
	}
}
