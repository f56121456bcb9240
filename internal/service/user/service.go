package user

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pharmanet/pharmacy-console/internal/session"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
)

type Service struct {
	api  pkghttp.Client
	auth pkghttp.Client
}

// NewService wraps the user backend. Authenticated endpoints draw their
// bearer credential from tokens; the token-exchange and registration
// endpoints stay public.
func NewService(client pkghttp.Client, tokens pkghttp.TokenSource) *Service {
	return &Service{
		api:  client,
		auth: client.With(pkghttp.WithBearerAuth(tokens)),
	}
}

// ObtainToken exchanges credentials for a bearer token.
func (s *Service) ObtainToken(ctx context.Context, creds Credentials) (session.Token, error) {
	req := s.api.NewRequest(ctx).SetBody(creds)
	return pkghttp.Send[session.Token](req, http.MethodPost, "/auth/token")
}

// Profile fetches the profile of the token's owner. The token is passed
// explicitly: during login it is not yet part of any session.
func (s *Service) Profile(ctx context.Context, tokenValue string) (session.UserProfile, error) {
	req := s.api.NewRequest(ctx).SetAuthToken(tokenValue)
	return pkghttp.Send[session.UserProfile](req, http.MethodGet, "/users/profile")
}

func (s *Service) List(ctx context.Context) ([]session.UserRecord, error) {
	return pkghttp.Send[[]session.UserRecord](s.auth.NewRequest(ctx), http.MethodGet, "/users")
}

func (s *Service) Update(ctx context.Context, userID int64, update Update) (session.UserRecord, error) {
	req := s.auth.NewRequest(ctx).
		SetPathParam("userID", strconv.FormatInt(userID, 10)).
		SetBody(update)
	return pkghttp.Send[session.UserRecord](req, http.MethodPatch, "/users/{userID}")
}

func (s *Service) Delete(ctx context.Context, userID int64) error {
	req := s.auth.NewRequest(ctx).SetPathParam("userID", strconv.FormatInt(userID, 10))
	_, err := pkghttp.Send[struct{}](req, http.MethodDelete, "/users/{userID}")
	return err
}

func (s *Service) Invite(ctx context.Context, invitation Invitation) (string, error) {
	req := s.auth.NewRequest(ctx).SetBody(invitation)
	resp, err := pkghttp.Send[messageResponse](req, http.MethodPost, "/users/invite")
	return resp.Message, err
}

// CompleteRegistration finishes an invited user's sign-up; the invite token
// in the payload authorizes it, so the call is public.
func (s *Service) CompleteRegistration(ctx context.Context, registration Registration) (string, error) {
	req := s.api.NewRequest(ctx).SetBody(registration)
	resp, err := pkghttp.Send[messageResponse](req, http.MethodPost, "/users/invite/complete")
	return resp.Message, err
}
