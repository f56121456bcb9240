package gateway

import (
	"net/http"

	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type logoutHandler struct {
	logger log.Logger
}

func NewLogoutHandler(logger log.Logger) pkghttp.Handler {
	return logoutHandler{logger: logger}
}

func (h logoutHandler) Method() string {
	return http.MethodPost
}

func (h logoutHandler) Path() string {
	return "/logout"
}

func (h logoutHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		ctx := r.Context()
		if sess, ok := sessionFromContext(ctx); ok {
			if err := sess.Logout(ctx); err != nil {
				return err
			}
			h.logger.Info(ctx, "user logged out")
		}

		w.SetCookie(expiredSessionCookie()).SetStatusCode(http.StatusNoContent)
		return nil
	}
}
