package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type pharmacyMedicationsHandler struct {
	pharmacies *pharmacy.Service
	logger     log.Logger
}

// NewPharmacyMedicationsHandler lists the medications stocked by one
// pharmacy, for the employee sale form.
func NewPharmacyMedicationsHandler(pharmacies *pharmacy.Service, logger log.Logger) pkghttp.Handler {
	return pharmacyMedicationsHandler{pharmacies: pharmacies, logger: logger}
}

func (h pharmacyMedicationsHandler) Method() string {
	return http.MethodGet
}

func (h pharmacyMedicationsHandler) Path() string {
	return "/employee/pharmacies/{pharmacyID}/medications"
}

func (h pharmacyMedicationsHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		pharmacyID, err := pkghttp.Parse(pkghttp.PathParameter[int64]("pharmacyID"), r, nil)
		if err != nil {
			return err
		}

		ctx := r.Context()
		medications, err := h.pharmacies.Medications(ctx, pharmacyID)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetJSONBody(medications)
		return nil
	}
}
