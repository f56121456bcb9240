package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/user"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type deleteUserHandler struct {
	users  *user.Service
	logger log.Logger
}

func NewDeleteUserHandler(users *user.Service, logger log.Logger) pkghttp.Handler {
	return deleteUserHandler{users: users, logger: logger}
}

func (h deleteUserHandler) Method() string {
	return http.MethodDelete
}

func (h deleteUserHandler) Path() string {
	return "/admin/users/{userID}"
}

func (h deleteUserHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		userID, err := pkghttp.Parse(pkghttp.PathParameter[int64]("userID"), r, nil)
		if err != nil {
			return err
		}

		ctx := r.Context()
		if err = h.users.Delete(ctx, userID); err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		h.logger.WithField("user_id", userID).Info(ctx, "user deleted")
		w.SetStatusCode(http.StatusNoContent)
		return nil
	}
}
