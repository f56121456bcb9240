//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Store=Store,StoreProvider=StoreProvider"
package session

import (
	"context"
)

const (
	storeKeyAuth = "auth"
	storeKeyUser = "user"
)

type (
	// Store persists one serialized session: the token and the user profile
	// under two fixed keys.
	//
	// Load returns both values or reports the session absent (nil, nil, nil)
	// when either entry is missing or fails to parse. Malformed entries are
	// never an error for the caller.
	//
	// Clear is idempotent.
	Store interface {
		Save(ctx context.Context, token Token, user UserProfile) error
		Load(ctx context.Context) (*Token, *UserProfile, error)
		Clear(ctx context.Context) error
	}

	// StoreProvider resolves the store slice owned by a single browser
	// session.
	StoreProvider interface {
		ForSession(id string) Store
	}
)
