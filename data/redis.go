package data

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/spf13/viper"
)

// OpenRedis - redis client for the configured address, checked with PING
func OpenRedis(cg *viper.Viper) (*redis.Client, error) {

	addr := cg.GetString("redis.addr")
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cg.GetString("redis.pass"),
		DB:           cg.GetInt("redis.db"),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     20,
		IdleTimeout:  5 * time.Minute,
	})

	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
