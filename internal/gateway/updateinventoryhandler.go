package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type updateInventoryHandler struct {
	pharmacies *pharmacy.Service
	logger     log.Logger
}

func NewUpdateInventoryHandler(pharmacies *pharmacy.Service, logger log.Logger) pkghttp.Handler {
	return updateInventoryHandler{pharmacies: pharmacies, logger: logger}
}

func (h updateInventoryHandler) Method() string {
	return http.MethodPatch
}

func (h updateInventoryHandler) Path() string {
	return "/employee/pharmacies/{pharmacyID}/inventory"
}

func (h updateInventoryHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		pharmacyID, err := pkghttp.Parse(pkghttp.PathParameter[int64]("pharmacyID"), r, nil)
		update, err := pkghttp.Parse(pkghttp.JSONBody[pharmacy.InventoryUpdate](), r, err)
		if err != nil {
			return err
		}

		ctx := r.Context()
		message, err := h.pharmacies.UpdateInventory(ctx, pharmacyID, update)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetJSONBody(messageResponse{Message: message})
		return nil
	}
}
