package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/medication"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

const maxMedicationFormMemory = 32 << 20

type createMedicationHandler struct {
	medications *medication.Service
	logger      log.Logger
}

// NewCreateMedicationHandler accepts the browser's multipart form and relays
// it upstream: the JSON payload under "payload", the attached files under
// "images".
func NewCreateMedicationHandler(medications *medication.Service, logger log.Logger) pkghttp.Handler {
	return createMedicationHandler{medications: medications, logger: logger}
}

func (h createMedicationHandler) Method() string {
	return http.MethodPost
}

func (h createMedicationHandler) Path() string {
	return "/manager/medications"
}

func (h createMedicationHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		payload, images, err := parseMedicationForm(r)
		if err != nil {
			return fmt.Errorf("%w: %s", pkghttp.ErrParsingError, err.Error())
		}

		ctx := r.Context()
		created, err := h.medications.Create(ctx, payload, images)
		if errors.Is(err, medication.ErrImageCount) {
			w.SetStatusCode(http.StatusBadRequest).
				SetJSONBody(errorResponse{Message: err.Error()})
			return nil
		}
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		h.logger.WithField("medication_id", created.ID).Info(ctx, "medication created")
		w.SetStatusCode(http.StatusCreated).SetJSONBody(created)
		return nil
	}
}

func parseMedicationForm(r *http.Request) (medication.CreateMedication, []medication.ImageUpload, error) {
	var payload medication.CreateMedication
	if err := r.ParseMultipartForm(maxMedicationFormMemory); err != nil {
		return payload, nil, fmt.Errorf("parse multipart form: %w", err)
	}

	payloadValues := r.MultipartForm.Value["payload"]
	if len(payloadValues) == 0 {
		return payload, nil, errors.New("multipart field payload not found")
	}
	if err := json.Unmarshal([]byte(payloadValues[0]), &payload); err != nil {
		return payload, nil, fmt.Errorf("decode payload: %w", err)
	}

	fileHeaders := r.MultipartForm.File["images"]
	images := make([]medication.ImageUpload, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			return payload, nil, fmt.Errorf("open image %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			return payload, nil, fmt.Errorf("read image %s: %w", header.Filename, err)
		}

		images = append(images, medication.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return payload, images, nil
}
