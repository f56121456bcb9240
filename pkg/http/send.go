package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Send executes the request and maps the outcome to either a decoded body or
// one of the closed set of client errors, evaluated in order: transport
// failure, successful empty response, successful body, server error (5xx),
// validation error (422), any other non-2xx.
func Send[T any](req *resty.Request, method, url string) (T, error) {
	var result T

	resp, err := req.Execute(method, url)
	if err != nil {
		if errors.Is(err, ErrAuthMissing) {
			return result, ErrAuthMissing
		}
		return result, TransportError{Cause: err}
	}

	if resp.IsSuccess() {
		body := resp.Body()
		if resp.StatusCode() == http.StatusNoContent || len(body) == 0 {
			return result, nil
		}
		if err = json.Unmarshal(body, &result); err != nil {
			return result, fmt.Errorf("decode response body: %w", err)
		}
		return result, nil
	}

	return result, mapResponseError(resp)
}
