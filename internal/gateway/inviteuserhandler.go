package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/user"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type inviteUserHandler struct {
	users  *user.Service
	logger log.Logger
}

func NewInviteUserHandler(users *user.Service, logger log.Logger) pkghttp.Handler {
	return inviteUserHandler{users: users, logger: logger}
}

func (h inviteUserHandler) Method() string {
	return http.MethodPost
}

func (h inviteUserHandler) Path() string {
	return "/admin/users/invite"
}

func (h inviteUserHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		invitation, err := pkghttp.Parse(pkghttp.JSONBody[user.Invitation](), r, nil)
		if err != nil {
			return err
		}

		ctx := r.Context()
		message, err := h.users.Invite(ctx, invitation)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		h.logger.WithField("role", invitation.Role).Info(ctx, "user invited")
		w.SetStatusCode(http.StatusCreated).SetJSONBody(messageResponse{Message: message})
		return nil
	}
}
