package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/user"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type listUsersHandler struct {
	users  *user.Service
	logger log.Logger
}

func NewListUsersHandler(users *user.Service, logger log.Logger) pkghttp.Handler {
	return listUsersHandler{users: users, logger: logger}
}

func (h listUsersHandler) Method() string {
	return http.MethodGet
}

func (h listUsersHandler) Path() string {
	return "/admin/users"
}

func (h listUsersHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		ctx := r.Context()
		records, err := h.users.List(ctx)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetJSONBody(records)
		return nil
	}
}
