package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type recordSaleHandler struct {
	pharmacies *pharmacy.Service
	logger     log.Logger
}

func NewRecordSaleHandler(pharmacies *pharmacy.Service, logger log.Logger) pkghttp.Handler {
	return recordSaleHandler{pharmacies: pharmacies, logger: logger}
}

func (h recordSaleHandler) Method() string {
	return http.MethodPost
}

func (h recordSaleHandler) Path() string {
	return "/employee/pharmacies/{pharmacyID}/sales"
}

func (h recordSaleHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		pharmacyID, err := pkghttp.Parse(pkghttp.PathParameter[int64]("pharmacyID"), r, nil)
		sale, err := pkghttp.Parse(pkghttp.JSONBody[pharmacy.SaleRequest](), r, err)
		if err != nil {
			return err
		}

		ctx := r.Context()
		message, err := h.pharmacies.RecordSale(ctx, pharmacyID, sale)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		h.logger.WithField("pharmacy_id", pharmacyID).Info(ctx, "sale recorded")
		w.SetStatusCode(http.StatusCreated).SetJSONBody(messageResponse{Message: message})
		return nil
	}
}
