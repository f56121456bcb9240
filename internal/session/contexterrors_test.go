package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pharmanet/pharmacy-console/internal/session"
	sessionmock "github.com/pharmanet/pharmacy-console/internal/session/mock"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

func TestContext_StoreFailures(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	now := time.Unix(1000, 0)
	errStore := errors.New("store unavailable")

	t.Run("hydration_fails_when_load_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := sessionmock.NewStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, nil, errStore)

		_, err := session.NewContext(clock.Set(context.Background(), now), store, clock)
		assert.ErrorIs(t, err, errStore)
	})

	t.Run("hydration_fails_when_stale_clear_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expired := session.Token{Value: "sometokenvalue", ExpiresAt: now.Add(-time.Minute).Unix()}
		store := sessionmock.NewStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(&expired, &someUser, nil)
		store.EXPECT().Clear(gomock.Any()).Return(errStore)

		_, err := session.NewContext(clock.Set(context.Background(), now), store, clock)
		assert.ErrorIs(t, err, errStore)
	})

	t.Run("login_keeps_previous_state_when_save_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx := clock.Set(context.Background(), now)
		store := sessionmock.NewStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(nil, nil, nil)
		store.EXPECT().Save(gomock.Any(), someToken, someUser).Return(errStore)

		sess, err := session.NewContext(ctx, store, clock)
		require.NoError(t, err)

		assert.ErrorIs(t, sess.Login(ctx, someToken, someUser), errStore)
		_, _, held := sess.Current()
		assert.False(t, held)
	})

	t.Run("logout_keeps_session_when_clear_fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		valid := session.Token{Value: "sometokenvalue", ExpiresAt: now.Add(time.Hour).Unix()}
		ctx := clock.Set(context.Background(), now)
		store := sessionmock.NewStore(ctrl)
		store.EXPECT().Load(gomock.Any()).Return(&valid, &someUser, nil)
		store.EXPECT().Clear(gomock.Any()).Return(errStore)

		sess, err := session.NewContext(ctx, store, clock)
		require.NoError(t, err)

		assert.ErrorIs(t, sess.Logout(ctx), errStore)
		_, _, held := sess.Current()
		assert.True(t, held)
	})
}
