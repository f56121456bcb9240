package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	pkgstrings "github.com/pharmanet/pharmacy-console/pkg/strings"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) (err error)

type Handler interface {
	Method() string
	Path() string
	HTTPHandler() HandlerFunc
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
	SetBody(contentType string, data []byte) ResponseWriter
}

type RequestDataProvider[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("failed to parse request")

func Parse[T any](provider RequestDataProvider[T], from *http.Request, lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}
	result, err := provider(from)
	if err != nil {
		return result, fmt.Errorf("%w: %s", ErrParsingError, err.Error())
	}
	return result, nil
}

func PathParameter[T any](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		params := mux.Vars(r)
		paramValue, ok := params[param]
		if !ok {
			var result T
			return result, fmt.Errorf("path parameter %s not found", param)
		}
		return pkgstrings.ParseTypedValue[T](paramValue)
	}
}

func QueryParameter[T any](param string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("query parameter %s not found", param)
		}
		return pkgstrings.ParseTypedValue[T](value)
	}
}

func OptionalQueryParameter[T any](param string, def T) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			return def, nil
		}
		return pkgstrings.ParseTypedValue[T](value)
	}
}

func CookieValue[T any](name string) RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		cookie, err := r.Cookie(name)
		if err != nil {
			var result T
			return result, fmt.Errorf("cookie with name %s not found", name)
		}
		return pkgstrings.ParseTypedValue[T](cookie.Value)
	}
}

func JSONBody[T any]() RequestDataProvider[T] {
	return func(r *http.Request) (T, error) {
		var body T
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return body, fmt.Errorf("failed to decode json body: %w", err)
		}
		return body, nil
	}
}

type responseWriter struct {
	impl http.ResponseWriter

	writeBodyFunc func() error
	httpCode      int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.writeBodyFunc = func() error {
		bodyEncoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode body: %w", err)
		}

		w.impl.Header().Set("Content-Type", "application/json")
		w.impl.WriteHeader(w.httpCode)
		_, err = w.impl.Write(bodyEncoded)
		if err != nil {
			return fmt.Errorf("failed to write body: %w", err)
		}

		return nil
	}
	return w
}

func (w *responseWriter) SetBody(contentType string, data []byte) ResponseWriter {
	w.writeBodyFunc = func() error {
		w.impl.Header().Set("Content-Type", contentType)
		w.impl.WriteHeader(w.httpCode)
		_, err := w.impl.Write(data)
		if err != nil {
			return fmt.Errorf("failed to write body: %w", err)
		}
		return nil
	}
	return w
}

func (w *responseWriter) write(err error) {
	switch {
	case errors.Is(err, ErrParsingError):
		w.impl.WriteHeader(http.StatusBadRequest)
	case err != nil:
		w.impl.WriteHeader(http.StatusInternalServerError)
	case w.writeBodyFunc != nil:
		if err = w.writeBodyFunc(); err != nil {
			w.impl.WriteHeader(http.StatusInternalServerError)
		}
	default:
		w.impl.WriteHeader(w.httpCode)
	}
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(w *responseWriter) {
		if msg := recover(); msg != nil {
			slog.Error("request handled with panic",
				"panic", fmt.Sprintf("%v", msg),
				"stack", string(debug.Stack()),
			)
			w.impl.WriteHeader(http.StatusInternalServerError)
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:          w,
			writeBodyFunc: nil,
			httpCode:      http.StatusOK,
		}

		defer recoverPanic(respWriter)
		err := handler(respWriter, r)
		respWriter.write(err)
	}
}
