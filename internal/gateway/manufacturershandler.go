package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/medication"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type manufacturersHandler struct {
	medications *medication.Service
	logger      log.Logger
}

func NewManufacturersHandler(medications *medication.Service, logger log.Logger) pkghttp.Handler {
	return manufacturersHandler{medications: medications, logger: logger}
}

func (h manufacturersHandler) Method() string {
	return http.MethodGet
}

func (h manufacturersHandler) Path() string {
	return "/manufacturers"
}

func (h manufacturersHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		ctx := r.Context()
		manufacturers, err := h.medications.Manufacturers(ctx)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetJSONBody(manufacturers)
		return nil
	}
}
