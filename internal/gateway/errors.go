package gateway

import (
	"context"
	"errors"
	"net/http"

	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type errorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// writeServiceError renders a backend call failure as a JSON error body.
// Validation field details pass through so the browser can attach them to
// form inputs. Unknown errors propagate to the generic 500 path.
func writeServiceError(ctx context.Context, logger log.Logger, w pkghttp.ResponseWriter, err error) error {
	var (
		validationErr pkghttp.ValidationError
		requestErr    pkghttp.RequestError
		serverErr     pkghttp.ServerError
		transportErr  pkghttp.TransportError
	)
	switch {
	case errors.Is(err, pkghttp.ErrAuthMissing):
		w.SetStatusCode(http.StatusUnauthorized).
			SetJSONBody(errorResponse{Message: err.Error()})
	case errors.As(err, &validationErr):
		logger.WithField("fields", validationErr.Fields).
			Warn(ctx, "request rejected by backend validation")
		w.SetStatusCode(http.StatusUnprocessableEntity).
			SetJSONBody(errorResponse{Message: validationErr.Error(), Fields: validationErr.Fields})
	case errors.As(err, &requestErr):
		w.SetStatusCode(requestErr.StatusCode).
			SetJSONBody(errorResponse{Message: requestErr.Error()})
	case errors.As(err, &serverErr):
		w.SetStatusCode(http.StatusBadGateway).
			SetJSONBody(errorResponse{Message: serverErr.Error()})
	case errors.As(err, &transportErr):
		logger.WithError(err).Warn(ctx, "backend unreachable")
		w.SetStatusCode(http.StatusBadGateway).
			SetJSONBody(errorResponse{Message: transportErr.Error()})
	default:
		return err
	}
	return nil
}
