package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/medication"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type catalogHandler struct {
	medications  *medication.Service
	mediaBaseURL string
	logger       log.Logger
}

// NewCatalogHandler serves the public storefront data at the root path, the
// page every failed guard decision lands on.
func NewCatalogHandler(medications *medication.Service, mediaBaseURL string, logger log.Logger) pkghttp.Handler {
	return catalogHandler{medications: medications, mediaBaseURL: mediaBaseURL, logger: logger}
}

func (h catalogHandler) Method() string {
	return http.MethodGet
}

func (h catalogHandler) Path() string {
	return "/"
}

func (h catalogHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		ctx := r.Context()
		medications, err := h.medications.List(ctx)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetJSONBody(catalogResponse{
			Medications:  medications,
			MediaBaseURL: h.mediaBaseURL,
		})
		return nil
	}
}

type catalogResponse struct {
	Medications  []medication.Medication `json:"medications"`
	MediaBaseURL string                  `json:"media_base_url"`
}
