package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmanet/pharmacy-console/internal/gateway"
	"github.com/pharmanet/pharmacy-console/internal/session"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

func newGuardedRouter(resolver *gateway.SessionResolver, allowed ...session.Role) http.Handler {
	router := mux.NewRouter()
	resolver.WithSessionResolution()(router)

	protected := router.NewRoute().Subrouter()
	resolver.RequireRoles(allowed...)(protected)
	protected.HandleFunc("/admin/users", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return router
}

func TestRequireRoles_Decides(t *testing.T) {
	adminProfile := session.UserProfile{
		Info: session.UserRecord{ID: 1, Role: session.RoleAdmin},
	}
	validToken := session.Token{Value: "sometokenvalue", ExpiresAt: time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name         string
		establish    bool
		token        session.Token
		user         session.UserProfile
		allowed      []session.Role
		expectCode   int
		expectTarget string
	}{
		{
			name:       "renders_for_allowed_role",
			establish:  true,
			token:      validToken,
			user:       adminProfile,
			allowed:    []session.Role{session.RoleAdmin},
			expectCode: http.StatusOK,
		},
		{
			name:         "redirects_without_session_cookie",
			establish:    false,
			allowed:      []session.Role{session.RoleAdmin},
			expectCode:   http.StatusFound,
			expectTarget: "/",
		},
		{
			name:      "redirects_for_disallowed_role",
			establish: true,
			token:     validToken,
			user: session.UserProfile{
				Info: session.UserRecord{ID: 2, Role: session.RoleEmployee},
			},
			allowed:      []session.Role{session.RoleAdmin},
			expectCode:   http.StatusFound,
			expectTarget: "/",
		},
		{
			name:         "redirects_for_expired_token",
			establish:    true,
			token:        session.Token{Value: "sometokenvalue", ExpiresAt: time.Now().Add(-time.Hour).Unix()},
			user:         adminProfile,
			allowed:      []session.Role{session.RoleAdmin},
			expectCode:   http.StatusFound,
			expectTarget: "/",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := gateway.NewSessionResolver(
				session.NewMemoryStoreProvider(),
				pkgtime.NewAdjustableClock(),
				time.Hour,
			)
			router := newGuardedRouter(resolver, tc.allowed...)

			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			if tc.establish {
				cookie, err := resolver.Establish(context.Background(), tc.token, tc.user)
				require.NoError(t, err)
				req.AddCookie(cookie)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tc.expectCode, recorder.Code)
			if tc.expectTarget != "" {
				assert.Equal(t, tc.expectTarget, recorder.Header().Get("Location"))
			}
		})
	}
}

func TestEstablish_SetsSessionCookie(t *testing.T) {
	resolver := gateway.NewSessionResolver(
		session.NewMemoryStoreProvider(),
		pkgtime.NewAdjustableClock(),
		time.Hour,
	)

	token := session.Token{Value: "sometokenvalue", ExpiresAt: time.Now().Add(time.Hour).Unix()}
	profile := session.UserProfile{Info: session.UserRecord{ID: 1, Role: session.RoleManager}}

	cookie, err := resolver.Establish(context.Background(), token, profile)
	require.NoError(t, err)

	assert.Equal(t, "console_session", cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)
}

func TestRequireRoles_SessionsAreIndependent(t *testing.T) {
	resolver := gateway.NewSessionResolver(
		session.NewMemoryStoreProvider(),
		pkgtime.NewAdjustableClock(),
		time.Hour,
	)
	router := newGuardedRouter(resolver, session.RoleAdmin)

	token := session.Token{Value: "sometokenvalue", ExpiresAt: time.Now().Add(time.Hour).Unix()}
	cookie, err := resolver.Establish(
		context.Background(),
		token,
		session.UserProfile{Info: session.UserRecord{ID: 1, Role: session.RoleAdmin}},
	)
	require.NoError(t, err)

	authenticated := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	authenticated.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authenticated)
	assert.Equal(t, http.StatusOK, recorder.Code)

	forged := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	forged.AddCookie(&http.Cookie{Name: "console_session", Value: "unknown-session-id"})
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, forged)
	assert.Equal(t, http.StatusFound, recorder.Code)
}
