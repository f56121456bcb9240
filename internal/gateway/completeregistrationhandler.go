package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/user"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type completeRegistrationHandler struct {
	users  *user.Service
	logger log.Logger
}

// NewCompleteRegistrationHandler finishes an invited user's sign-up. The
// invite token inside the payload authorizes the call, so no session is
// required.
func NewCompleteRegistrationHandler(users *user.Service, logger log.Logger) pkghttp.Handler {
	return completeRegistrationHandler{users: users, logger: logger}
}

func (h completeRegistrationHandler) Method() string {
	return http.MethodPost
}

func (h completeRegistrationHandler) Path() string {
	return "/register/complete"
}

func (h completeRegistrationHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		registration, err := pkghttp.Parse(pkghttp.JSONBody[user.Registration](), r, nil)
		if err != nil {
			return err
		}

		ctx := r.Context()
		message, err := h.users.CompleteRegistration(ctx, registration)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		w.SetStatusCode(http.StatusCreated).SetJSONBody(messageResponse{Message: message})
		return nil
	}
}

type messageResponse struct {
	Message string `json:"message"`
}
