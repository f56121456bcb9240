package session

import (
	"context"
	"fmt"
	"sync"

	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

// Context holds the session currently considered logged in, hydrated from
// the store once at construction. Login and Logout are its only two
// transitions; expiry is observed lazily by readers, never pushed by a
// timer. Consumers receive the instance by injection, there is no ambient
// package-level context.
type Context struct {
	store Store
	clock pkgtime.Clock

	mu    sync.RWMutex
	token *Token
	user  *UserProfile
}

// NewContext loads the persisted session. A stored pair already expired at
// hydration reads as absent and the stale entries are cleared.
func NewContext(ctx context.Context, store Store, clock pkgtime.Clock) (*Context, error) {
	c := &Context{store: store, clock: clock}

	token, user, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("hydrate session: %w", err)
	}
	if token == nil || user == nil {
		return c, nil
	}

	if token.ExpiredAt(clock.Now(ctx)) {
		if err = store.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear stale session: %w", err)
		}
		return c, nil
	}

	c.token = token
	c.user = user
	return c, nil
}

func (c *Context) Login(ctx context.Context, token Token, user UserProfile) error {
	if err := c.store.Save(ctx, token, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	c.mu.Lock()
	c.token = &token
	c.user = &user
	c.mu.Unlock()
	return nil
}

func (c *Context) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	c.mu.Lock()
	c.token = nil
	c.user = nil
	c.mu.Unlock()
	return nil
}

// Current returns the session pair; ok is false when no session is held.
func (c *Context) Current() (Token, UserProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == nil || c.user == nil {
		return Token{}, UserProfile{}, false
	}
	return *c.token, *c.user, true
}

// TokenValue exposes the held credential for authenticated HTTP calls.
func (c *Context) TokenValue(context.Context) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == nil {
		return "", false
	}
	return c.token.Value, true
}
