package http

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type (
	// TokenSource supplies the bearer credential for authenticated calls.
	// A false result means no credential is available.
	TokenSource func(ctx context.Context) (string, bool)

	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

// WithBearerAuth attaches the credential from the source to every request.
// A request already carrying an Authorization header is left untouched.
// When no credential is available the request fails with ErrAuthMissing
// before any network call is made.
func WithBearerAuth(source TokenSource) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Token != "" || req.Header.Get(headerAuthorization) != "" {
				return nil
			}

			token, ok := source(req.Context())
			if !ok {
				return ErrAuthMissing
			}

			req.SetHeader(headerAuthorization, bearerPrefix+token)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			loggerWithFields := logger.With(log.Fields{
				destinationNameLogField: getDestinationNameForLogging(c),
				"method":                resp.Request.Method,
				"url":                   resp.Request.URL,
				"responseCode":          resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				loggerWithFields.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				loggerWithFields.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					destinationNameLogField: getDestinationNameForLogging(c),
					"method":                req.Method,
					"url":                   req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

const (
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
