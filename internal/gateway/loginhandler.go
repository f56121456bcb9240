package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/service/user"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type loginHandler struct {
	users    *user.Service
	sessions *SessionResolver
	logger   log.Logger
}

func NewLoginHandler(users *user.Service, sessions *SessionResolver, logger log.Logger) pkghttp.Handler {
	return loginHandler{users: users, sessions: sessions, logger: logger}
}

func (h loginHandler) Method() string {
	return http.MethodPost
}

func (h loginHandler) Path() string {
	return "/login"
}

func (h loginHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		creds, err := pkghttp.Parse(pkghttp.JSONBody[user.Credentials](), r, nil)
		if err != nil {
			return err
		}

		ctx := r.Context()
		token, err := h.users.ObtainToken(ctx, creds)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		profile, err := h.users.Profile(ctx, token.Value)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		cookie, err := h.sessions.Establish(ctx, token, profile)
		if err != nil {
			return err
		}

		h.logger.WithField("role", profile.Info.Role).Info(ctx, "user logged in")
		w.SetCookie(cookie).SetJSONBody(sessionResponse{
			Authenticated: true,
			User:          &profile.Info,
			Pharmacies:    profile.Pharmacies,
			LandingPath:   landingPath(profile.Info.Role),
		})
		return nil
	}
}
