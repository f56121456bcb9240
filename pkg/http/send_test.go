package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
)

type testPayload struct {
	Message string `json:"message"`
}

func TestSend_Returns(t *testing.T) {
	tests := []struct {
		name     string
		response func(w http.ResponseWriter)
		expect   func(t *testing.T, result testPayload, err error)
	}{
		{
			name: "decoded_body_on_success",
			response: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"message":"ok"}`))
			},
			expect: func(t *testing.T, result testPayload, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ok", result.Message)
			},
		},
		{
			name: "zero_value_on_no_content",
			response: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNoContent)
			},
			expect: func(t *testing.T, result testPayload, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.Message)
			},
		},
		{
			name: "server_error_with_fixed_message_on_5xx",
			response: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"detail":"db down"}`))
			},
			expect: func(t *testing.T, _ testPayload, err error) {
				var serverErr pkghttp.ServerError
				require.ErrorAs(t, err, &serverErr)
				assert.Equal(t, "Server error, try again later", err.Error())
			},
		},
		{
			name: "validation_error_with_field_map_on_422",
			response: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"detail":[
					{"loc":["body","email"],"msg":"invalid email"},
					{"loc":["body","password"],"msg":"too short"}
				]}`))
			},
			expect: func(t *testing.T, _ testPayload, err error) {
				var validationErr pkghttp.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "Invalid data", err.Error())
				assert.Equal(t, map[string]string{
					"email":    "invalid email",
					"password": "too short",
				}, validationErr.Fields)
			},
		},
		{
			name: "validation_error_with_empty_fields_on_unparsable_422",
			response: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`not json`))
			},
			expect: func(t *testing.T, _ testPayload, err error) {
				var validationErr pkghttp.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Empty(t, validationErr.Fields)
			},
		},
		{
			name: "request_error_with_detail_on_4xx",
			response: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
			},
			expect: func(t *testing.T, _ testPayload, err error) {
				var requestErr pkghttp.RequestError
				require.ErrorAs(t, err, &requestErr)
				assert.Equal(t, http.StatusUnauthorized, requestErr.StatusCode)
				assert.Equal(t, "Invalid credentials", err.Error())
			},
		},
		{
			name: "request_error_with_fallback_message_on_bodyless_4xx",
			response: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
			},
			expect: func(t *testing.T, _ testPayload, err error) {
				var requestErr pkghttp.RequestError
				require.ErrorAs(t, err, &requestErr)
				assert.Equal(t, "HTTP 404: Not Found", err.Error())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				tc.response(w)
			}))
			defer srv.Close()

			client := pkghttp.NewClient(pkghttp.WithClientDestination("test", srv.URL))
			result, err := pkghttp.Send[testPayload](client.NewRequest(context.Background()), http.MethodGet, "/")
			tc.expect(t, result, err)
		})
	}
}

func TestSend_TransportErrorWhenServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("test", srv.URL))
	_, err := pkghttp.Send[testPayload](client.NewRequest(context.Background()), http.MethodGet, "/")

	var transportErr pkghttp.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotNil(t, transportErr.Cause)
}

func TestWithBearerAuth_Behaviour(t *testing.T) {
	var requests atomic.Int64
	var lastAuthorization string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		lastAuthorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Run("fails_before_network_when_no_token_available", func(t *testing.T) {
		client := pkghttp.NewClient(
			pkghttp.WithClientDestination("test", srv.URL),
			pkghttp.WithBearerAuth(func(context.Context) (string, bool) { return "", false }),
		)

		_, err := pkghttp.Send[testPayload](client.NewRequest(context.Background()), http.MethodGet, "/")
		require.ErrorIs(t, err, pkghttp.ErrAuthMissing)
		assert.Equal(t, int64(0), requests.Load())
	})

	t.Run("attaches_bearer_header", func(t *testing.T) {
		client := pkghttp.NewClient(
			pkghttp.WithClientDestination("test", srv.URL),
			pkghttp.WithBearerAuth(func(context.Context) (string, bool) { return "sometokenvalue", true }),
		)

		_, err := pkghttp.Send[testPayload](client.NewRequest(context.Background()), http.MethodGet, "/")
		require.NoError(t, err)
		assert.Equal(t, "Bearer sometokenvalue", lastAuthorization)
	})

	t.Run("explicit_token_wins_over_source", func(t *testing.T) {
		client := pkghttp.NewClient(
			pkghttp.WithClientDestination("test", srv.URL),
			pkghttp.WithBearerAuth(func(context.Context) (string, bool) { return "sometokenvalue", true }),
		)

		req := client.NewRequest(context.Background()).SetAuthToken("explicittoken")
		_, err := pkghttp.Send[testPayload](req, http.MethodGet, "/")
		require.NoError(t, err)
		assert.Equal(t, "Bearer explicittoken", lastAuthorization)
	})
}
