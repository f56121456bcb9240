package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pharmanet/pharmacy-console/internal/guard"
	"github.com/pharmanet/pharmacy-console/internal/session"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

const (
	sessionCookieName = "console_session"

	// Fixed redirect target for every failed guard decision.
	publicRootPath = "/"
)

type contextKey int

const sessionContextKey contextKey = iota

func withSession(ctx context.Context, sess *session.Context) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

func sessionFromContext(ctx context.Context) (*session.Context, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Context)
	return sess, ok
}

// SessionTokenSource feeds authenticated service calls from the session
// resolved for the current request.
func SessionTokenSource() pkghttp.TokenSource {
	return func(ctx context.Context) (string, bool) {
		sess, ok := sessionFromContext(ctx)
		if !ok {
			return "", false
		}
		return sess.TokenValue(ctx)
	}
}

type SessionResolver struct {
	stores session.StoreProvider
	clock  pkgtime.Clock
	ttl    time.Duration
}

func NewSessionResolver(stores session.StoreProvider, clock pkgtime.Clock, ttl time.Duration) *SessionResolver {
	return &SessionResolver{stores: stores, clock: clock, ttl: ttl}
}

// WithSessionResolution hydrates the browser session named by the request
// cookie and hands it to downstream handlers. Requests without a cookie, or
// whose stored session fails to load, proceed unauthenticated.
func (s *SessionResolver) WithSessionResolution() pkghttp.ServerOption {
	return pkghttp.WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				handler.ServeHTTP(w, r)
				return
			}

			sess, err := session.NewContext(r.Context(), s.stores.ForSession(cookie.Value), s.clock)
			if err != nil {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
		})
	})
}

// Establish creates a fresh browser session holding the pair and returns
// its cookie.
func (s *SessionResolver) Establish(ctx context.Context, token session.Token, user session.UserProfile) (*http.Cookie, error) {
	sessionID := uuid.NewString()
	sess, err := session.NewContext(ctx, s.stores.ForSession(sessionID), s.clock)
	if err != nil {
		return nil, err
	}
	if err = sess.Login(ctx, token, user); err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// RequireRoles gates a protected subtree. The pure guard decision is taken
// per navigation; the redirect to the public root is performed here as a
// distinct step.
func (s *SessionResolver) RequireRoles(roles ...session.Role) pkghttp.ServerOption {
	return pkghttp.WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token *session.Token
			var user *session.UserProfile
			if sess, ok := sessionFromContext(r.Context()); ok {
				if t, u, held := sess.Current(); held {
					token, user = &t, &u
				}
			}

			if guard.Decide(token, user, s.clock.Now(r.Context()), roles...) == guard.Redirect {
				http.Redirect(w, r, publicRootPath, http.StatusFound)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}
