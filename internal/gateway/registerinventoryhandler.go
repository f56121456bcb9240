package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type registerInventoryHandler struct {
	pharmacies *pharmacy.Service
	logger     log.Logger
}

func NewRegisterInventoryHandler(pharmacies *pharmacy.Service, logger log.Logger) pkghttp.Handler {
	return registerInventoryHandler{pharmacies: pharmacies, logger: logger}
}

func (h registerInventoryHandler) Method() string {
	return http.MethodPost
}

func (h registerInventoryHandler) Path() string {
	return "/manager/pharmacies/{pharmacyID}/inventory"
}

func (h registerInventoryHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		pharmacyID, err := pkghttp.Parse(pkghttp.PathParameter[int64]("pharmacyID"), r, nil)
		registration, err := pkghttp.Parse(pkghttp.JSONBody[pharmacy.InventoryRegistration](), r, err)
		if err != nil {
			return err
		}

		ctx := r.Context()
		message, err := h.pharmacies.RegisterInventory(ctx, pharmacyID, registration)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetStatusCode(http.StatusCreated).SetJSONBody(messageResponse{Message: message})
		return nil
	}
}
