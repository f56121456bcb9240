package medication

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
)

// ErrImageCount rejects a medication creation outside the allowed 1-3
// attached images.
var ErrImageCount = errors.New("a medication requires between 1 and 3 images")

type Service struct {
	api  pkghttp.Client
	auth pkghttp.Client
}

func NewService(client pkghttp.Client, tokens pkghttp.TokenSource) *Service {
	return &Service{
		api:  client,
		auth: client.With(pkghttp.WithBearerAuth(tokens)),
	}
}

// List returns the public medication catalog.
func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return pkghttp.Send[[]Medication](s.api.NewRequest(ctx), http.MethodGet, "/medications/")
}

func (s *Service) Manufacturers(ctx context.Context) ([]Manufacturer, error) {
	return pkghttp.Send[[]Manufacturer](s.api.NewRequest(ctx), http.MethodGet, "/medications/manufacturers/")
}

// Create registers a medication with its images as a single multipart
// request: the JSON payload under "payload", each image under "images".
func (s *Service) Create(ctx context.Context, payload CreateMedication, images []ImageUpload) (Medication, error) {
	if len(images) < 1 || len(images) > 3 {
		return Medication{}, ErrImageCount
	}

	payloadData, err := json.Marshal(payload)
	if err != nil {
		return Medication{}, fmt.Errorf("marshal medication payload: %w", err)
	}

	fields := make([]*resty.MultipartField, 0, len(images)+1)
	fields = append(fields, &resty.MultipartField{
		Param:       "payload",
		ContentType: "application/json",
		Reader:      bytes.NewReader(payloadData),
	})
	for _, image := range images {
		fields = append(fields, &resty.MultipartField{
			Param:       "images",
			FileName:    image.Filename,
			ContentType: image.ContentType,
			Reader:      bytes.NewReader(image.Data),
		})
	}

	req := s.auth.NewRequest(ctx).SetMultipartFields(fields...)
	return pkghttp.Send[Medication](req, http.MethodPost, "/medications")
}
