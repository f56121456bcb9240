package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pharmanet/pharmacy-console/pkg/log"
)

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

// WithCORSHandler reflects the request origin with credentials allowed and
// answers preflight requests. The catch-all OPTIONS route is required for
// preflights to match at all: mux middlewares only run on matched routes.
func WithCORSHandler() ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.CORSMethodMiddleware(router))
		router.Use(corsOriginMiddleware)
		router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		)
	}
}

func corsOriginMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Add("Vary", "Origin")
		}

		handler.ServeHTTP(w, r)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	code int
}

func (w *loggingResponseWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func WithLogging(logger log.Logger, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths,
		healthPath,
	)

	isExcluded := func(path string) bool {
		for _, excludedPath := range excludedPaths {
			if excludedPath == path {
				return true
			}
		}
		return false
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcluded(r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			lrw := &loggingResponseWriter{w, http.StatusOK}
			handler.ServeHTTP(lrw, r)

			logger.With(log.Fields{
				"method":        r.Method,
				"path":          r.URL.Path,
				"uri":           r.RequestURI,
				"response_code": lrw.code,
			}).Info(r.Context(), "request handled")
		})
	})
}
