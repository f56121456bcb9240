package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/user"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type updateUserHandler struct {
	users  *user.Service
	logger log.Logger
}

func NewUpdateUserHandler(users *user.Service, logger log.Logger) pkghttp.Handler {
	return updateUserHandler{users: users, logger: logger}
}

func (h updateUserHandler) Method() string {
	return http.MethodPatch
}

func (h updateUserHandler) Path() string {
	return "/admin/users/{userID}"
}

func (h updateUserHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		userID, err := pkghttp.Parse(pkghttp.PathParameter[int64]("userID"), r, nil)
		update, err := pkghttp.Parse(pkghttp.JSONBody[user.Update](), r, err)
		if err != nil {
			return err
		}

		ctx := r.Context()
		record, err := h.users.Update(ctx, userID, update)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetJSONBody(record)
		return nil
	}
}
