package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

// RedisStore - one redis hash per session, expiring after TTL without writes
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

// NewRedisStore -
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisStore{Client: client, TTL: ttl, Prefix: "session:"}
}

func (s *RedisStore) key(sid string) string {
	return s.Prefix + sid
}

// Get -
func (s *RedisStore) Get(sid, key string, dst interface{}) error {

	b, err := s.Client.HGet(s.key(sid), key).Bytes()

	if err == redis.Nil {
		return ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("cannot read session %s. %w", key, err)
	}

	return json.Unmarshal(b, dst)
}

// Set -
func (s *RedisStore) Set(sid, key string, value interface{}) error {

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	_, err = s.Client.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.HSet(s.key(sid), key, b)
		pipe.Expire(s.key(sid), s.TTL)
		return nil
	})

	if err != nil {
		return fmt.Errorf("cannot write session %s. %w", key, err)
	}

	return nil
}

// Delete -
func (s *RedisStore) Delete(sid string) error {
	return s.Client.Del(s.key(sid)).Err()
}
