package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmanet/pharmacy-console/internal/session"
)

var (
	someToken = session.Token{Value: "sometokenvalue", ExpiresAt: 4102444800}
	someUser  = session.UserProfile{
		Info: session.UserRecord{
			ID:          42,
			Email:       "admin@example.com",
			Role:        session.RoleAdmin,
			Name:        "Some Admin",
			PhoneNumber: "+10000000000",
		},
		Pharmacies: []int64{1, 2},
	}
)

func TestStore_RoundTrip(t *testing.T) {
	stores := map[string]session.Store{
		"file":   session.NewFileStore(t.TempDir()),
		"memory": session.NewMemoryStore(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			token, user, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, token)
			assert.Nil(t, user)

			require.NoError(t, store.Save(ctx, someToken, someUser))

			token, user, err = store.Load(ctx)
			require.NoError(t, err)
			require.NotNil(t, token)
			require.NotNil(t, user)
			assert.Equal(t, someToken, *token)
			assert.Equal(t, someUser, *user)

			require.NoError(t, store.Clear(ctx))
			require.NoError(t, store.Clear(ctx))

			token, user, err = store.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, token)
			assert.Nil(t, user)
		})
	}
}

func TestFileStore_Load_AbsentWhenEntryUnparsable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := session.NewFileStore(dir)

	require.NoError(t, store.Save(ctx, someToken, someUser))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth.json"), []byte("{broken"), 0o600))

	token, user, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
	assert.Nil(t, user)
}

func TestFileStore_Load_AbsentWhenOneEntryMissing(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := session.NewFileStore(dir)

	require.NoError(t, store.Save(ctx, someToken, someUser))
	require.NoError(t, os.Remove(filepath.Join(dir, "user.json")))

	token, user, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
	assert.Nil(t, user)
}

func TestMemoryStoreProvider_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	provider := session.NewMemoryStoreProvider()

	first := provider.ForSession("first")
	second := provider.ForSession("second")

	require.NoError(t, first.Save(ctx, someToken, someUser))

	token, user, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
	assert.Nil(t, user)

	token, _, err = first.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, someToken, *token)
}
