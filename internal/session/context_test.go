package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmanet/pharmacy-console/internal/session"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

func TestContext_Hydration(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	now := time.Unix(1000, 0)

	tests := []struct {
		name       string
		stored     *session.Token
		expectHeld bool
	}{
		{
			name:       "holds_stored_pair",
			stored:     &session.Token{Value: "sometokenvalue", ExpiresAt: now.Add(time.Hour).Unix()},
			expectHeld: true,
		},
		{
			name:       "absent_when_store_empty",
			stored:     nil,
			expectHeld: false,
		},
		{
			name:       "absent_when_stored_pair_expired",
			stored:     &session.Token{Value: "sometokenvalue", ExpiresAt: now.Add(-time.Hour).Unix()},
			expectHeld: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := clock.Set(context.Background(), now)
			store := session.NewMemoryStore()
			if tc.stored != nil {
				require.NoError(t, store.Save(ctx, *tc.stored, someUser))
			}

			sess, err := session.NewContext(ctx, store, clock)
			require.NoError(t, err)

			token, user, held := sess.Current()
			assert.Equal(t, tc.expectHeld, held)
			if tc.expectHeld {
				assert.Equal(t, *tc.stored, token)
				assert.Equal(t, someUser, user)
			}
		})
	}
}

func TestContext_HydrationClearsExpiredPair(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	now := time.Unix(1000, 0)
	ctx := clock.Set(context.Background(), now)

	store := session.NewMemoryStore()
	expired := session.Token{Value: "sometokenvalue", ExpiresAt: now.Add(-time.Minute).Unix()}
	require.NoError(t, store.Save(ctx, expired, someUser))

	_, err := session.NewContext(ctx, store, clock)
	require.NoError(t, err)

	token, user, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
	assert.Nil(t, user)
}

func TestContext_LoginLogout(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	now := time.Unix(1000, 0)
	ctx := clock.Set(context.Background(), now)
	store := session.NewMemoryStore()

	sess, err := session.NewContext(ctx, store, clock)
	require.NoError(t, err)

	_, _, held := sess.Current()
	assert.False(t, held)
	_, ok := sess.TokenValue(ctx)
	assert.False(t, ok)

	require.NoError(t, sess.Login(ctx, someToken, someUser))

	token, user, held := sess.Current()
	require.True(t, held)
	assert.Equal(t, someToken, token)
	assert.Equal(t, someUser, user)

	value, ok := sess.TokenValue(ctx)
	require.True(t, ok)
	assert.Equal(t, someToken.Value, value)

	storedToken, storedUser, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, storedToken)
	require.NotNil(t, storedUser)

	require.NoError(t, sess.Logout(ctx))

	_, _, held = sess.Current()
	assert.False(t, held)

	storedToken, storedUser, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, storedToken)
	assert.Nil(t, storedUser)
}
