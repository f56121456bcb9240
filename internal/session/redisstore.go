package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "console:session"

type redisStoreProvider struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStoreProvider persists session entries in redis, two keys per
// session, each expiring after ttl. Session lifetime in the browser is
// bounded by the cookie; the TTL only reclaims abandoned entries.
func NewRedisStoreProvider(client *redis.Client, ttl time.Duration) StoreProvider {
	return redisStoreProvider{client: client, ttl: ttl}
}

func (p redisStoreProvider) ForSession(id string) Store {
	return redisStore{client: p.client, ttl: p.ttl, sessionID: id}
}

type redisStore struct {
	client    *redis.Client
	ttl       time.Duration
	sessionID string
}

func (s redisStore) Save(ctx context.Context, token Token, user UserProfile) error {
	tokenData, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("marshal session token: %w", err)
	}
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.entryKey(storeKeyAuth), tokenData, s.ttl)
	pipe.Set(ctx, s.entryKey(storeKeyUser), userData, s.ttl)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session entries: %w", err)
	}

	return nil
}

func (s redisStore) Load(ctx context.Context) (*Token, *UserProfile, error) {
	tokenData, ok, err := s.readEntry(ctx, storeKeyAuth)
	if err != nil || !ok {
		return nil, nil, err
	}
	userData, ok, err := s.readEntry(ctx, storeKeyUser)
	if err != nil || !ok {
		return nil, nil, err
	}

	var token Token
	if err = json.Unmarshal(tokenData, &token); err != nil {
		return nil, nil, nil
	}
	var user UserProfile
	if err = json.Unmarshal(userData, &user); err != nil {
		return nil, nil, nil
	}

	return &token, &user, nil
}

func (s redisStore) Clear(ctx context.Context) error {
	err := s.client.Del(ctx, s.entryKey(storeKeyAuth), s.entryKey(storeKeyUser)).Err()
	if err != nil {
		return fmt.Errorf("remove session entries: %w", err)
	}
	return nil
}

func (s redisStore) readEntry(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.entryKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read session entry %s: %w", key, err)
	}
	return data, true, nil
}

func (s redisStore) entryKey(key string) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, s.sessionID, key)
}
