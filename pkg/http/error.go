package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ErrAuthMissing fails an authenticated call for which no bearer credential
// is available. It is raised before the request hits the network.
var ErrAuthMissing = errors.New("no valid auth scheme available")

// TransportError reports a request that failed before any response was
// obtained.
type TransportError struct {
	Cause error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Cause)
}

func (e TransportError) Unwrap() error {
	return e.Cause
}

// ServerError reports a 5xx response. The response body is discarded and the
// message is fixed.
type ServerError struct{}

func (ServerError) Error() string {
	return "Server error, try again later"
}

// ValidationError reports a 422 response, carrying per-field messages keyed
// by field name.
type ValidationError struct {
	Fields map[string]string
}

func (ValidationError) Error() string {
	return "Invalid data"
}

// RequestError reports any other non-2xx response with a single message.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e RequestError) Error() string {
	return e.Message
}

type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func mapResponseError(resp *resty.Response) error {
	statusCode := resp.StatusCode()
	switch {
	case statusCode >= http.StatusInternalServerError:
		return ServerError{}
	case statusCode == http.StatusUnprocessableEntity:
		return ValidationError{Fields: parseValidationIssues(resp.Body())}
	default:
		return RequestError{
			StatusCode: statusCode,
			Message:    parseErrorDetail(resp.Body(), statusCode),
		}
	}
}

// parseValidationIssues extracts the field->message map from a structured
// issue list. The last segment of an issue location is the field name.
func parseValidationIssues(body []byte) map[string]string {
	var parsed struct {
		Detail []validationIssue `json:"detail"`
	}
	fields := make(map[string]string)
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fields
	}

	for _, issue := range parsed.Detail {
		if len(issue.Loc) == 0 {
			continue
		}
		field, ok := issue.Loc[len(issue.Loc)-1].(string)
		if !ok || field == "" {
			continue
		}
		fields[field] = issue.Msg
	}

	return fields
}

func parseErrorDetail(body []byte, statusCode int) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}

	return fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
}
