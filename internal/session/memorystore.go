package session

import (
	"context"
	"encoding/json"
	"sync"
)

type memoryStoreProvider struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMemoryStoreProvider keeps session entries in process memory. Used as
// the gateway fallback when no redis address is configured, and in tests.
func NewMemoryStoreProvider() StoreProvider {
	return &memoryStoreProvider{
		entries: make(map[string][]byte),
	}
}

// NewMemoryStore returns a store for a single local session.
func NewMemoryStore() Store {
	return NewMemoryStoreProvider().ForSession("local")
}

func (p *memoryStoreProvider) ForSession(id string) Store {
	return memoryStore{provider: p, sessionID: id}
}

type memoryStore struct {
	provider  *memoryStoreProvider
	sessionID string
}

func (s memoryStore) Save(_ context.Context, token Token, user UserProfile) error {
	tokenData, err := json.Marshal(token)
	if err != nil {
		return err
	}
	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	s.provider.entries[s.entryKey(storeKeyAuth)] = tokenData
	s.provider.entries[s.entryKey(storeKeyUser)] = userData
	return nil
}

func (s memoryStore) Load(_ context.Context) (*Token, *UserProfile, error) {
	s.provider.mu.Lock()
	tokenData, tokenOK := s.provider.entries[s.entryKey(storeKeyAuth)]
	userData, userOK := s.provider.entries[s.entryKey(storeKeyUser)]
	s.provider.mu.Unlock()

	if !tokenOK || !userOK {
		return nil, nil, nil
	}

	var token Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, nil, nil
	}
	var user UserProfile
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, nil, nil
	}

	return &token, &user, nil
}

func (s memoryStore) Clear(_ context.Context) error {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	delete(s.provider.entries, s.entryKey(storeKeyAuth))
	delete(s.provider.entries, s.entryKey(storeKeyUser))
	return nil
}

func (s memoryStore) entryKey(key string) string {
	return s.sessionID + ":" + key
}
