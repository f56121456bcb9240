package gateway

import (
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/session"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
)

type sessionResponse struct {
	Authenticated bool                `json:"authenticated"`
	User          *session.UserRecord `json:"user,omitempty"`
	Pharmacies    []int64             `json:"pharmacies,omitempty"`
	LandingPath   string              `json:"landing_path,omitempty"`
}

func landingPath(role session.Role) string {
	switch role {
	case session.RoleAdmin:
		return "/admin"
	case session.RoleManager:
		return "/manager"
	case session.RoleEmployee:
		return "/employee"
	default:
		return publicRootPath
	}
}

type sessionHandler struct{}

// NewSessionHandler reports the session the browser currently holds, so the
// client can restore its auth state on page load.
func NewSessionHandler() pkghttp.Handler {
	return sessionHandler{}
}

func (h sessionHandler) Method() string {
	return http.MethodGet
}

func (h sessionHandler) Path() string {
	return "/session"
}

func (h sessionHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		sess, ok := sessionFromContext(r.Context())
		if !ok {
			w.SetJSONBody(sessionResponse{Authenticated: false})
			return nil
		}

		_, profile, held := sess.Current()
		if !held {
			w.SetJSONBody(sessionResponse{Authenticated: false})
			return nil
		}

		w.SetJSONBody(sessionResponse{
			Authenticated: true,
			User:          &profile.Info,
			Pharmacies:    profile.Pharmacies,
			LandingPath:   landingPath(profile.Info.Role),
		})
		return nil
	}
}
