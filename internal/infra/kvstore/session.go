package kvstore

import (
	"context"
	"time"

	"sandwich-storefront/internal/usecase/cart"
)

// SessionStores scopes keys per shopper: sandwich:<session>:<key>.
type SessionStores struct {
	client *Client
	ttl    time.Duration
}

func NewSessionStores(client *Client, ttl time.Duration) *SessionStores {
	return &SessionStores{client: client, ttl: ttl}
}

func (s *SessionStores) ForSession(sessionID string) cart.Store {
	return &sessionStore{client: s.client, sessionID: sessionID, ttl: s.ttl}
}

type sessionStore struct {
	client    *Client
	sessionID string
	ttl       time.Duration
}

func (s *sessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.client.get(ctx, buildKey(s.sessionID, key))
}

// Set refreshes the key's TTL.
func (s *sessionStore) Set(ctx context.Context, key, value string) error {
	return s.client.set(ctx, buildKey(s.sessionID, key), value, s.ttl)
}

func (s *sessionStore) Remove(ctx context.Context, key string) error {
	return s.client.del(ctx, buildKey(s.sessionID, key))
}

var _ cart.StoreFactory = (*SessionStores)(nil)
