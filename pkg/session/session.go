// Package session stores per-browser-session key/value state in Redis.
// The checkout flow stashes address, phone and flow identifiers here
// between the form submission and the gateway callback.
package session

import (
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/redis"
)

// Store session storage contract, satisfied by the Redis store and by the
// in-memory store used in tests.
type Store interface {
	Set(sessionID, key, value string)
	Get(sessionID, key string) string
	Forget(sessionID string, keys ...string)
}

// RedisStore Redis backed session store
type RedisStore struct {
	client *redis.RedisClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore builds the store from configuration
func NewRedisStore() *RedisStore {
	return &RedisStore{
		client: redis.Redis,
		prefix: config.GetString("session.prefix", "gadgethub:session"),
		ttl:    time.Duration(config.GetInt("session.lifetime", 7200)) * time.Second,
	}
}

func (s *RedisStore) storageKey(sessionID, key string) string {
	return s.prefix + ":" + sessionID + ":" + key
}

// Set writes one session field
func (s *RedisStore) Set(sessionID, key, value string) {
	s.client.Set(s.storageKey(sessionID, key), value, s.ttl)
}

// Get reads one session field, "" when absent
func (s *RedisStore) Get(sessionID, key string) string {
	return s.client.Get(s.storageKey(sessionID, key))
}

// Forget removes session fields
func (s *RedisStore) Forget(sessionID string, keys ...string) {
	if len(keys) == 0 {
		return
	}
	storageKeys := make([]string, len(keys))
	for i, key := range keys {
		storageKeys[i] = s.storageKey(sessionID, key)
	}
	s.client.Del(storageKeys...)
}
