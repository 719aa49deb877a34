package session

import (
	"errors"
	"time"
)

// ErrNotFound - the session has no value for the key
var ErrNotFound = errors.New("session: key not found")

// DefaultTTL - how long an idle session is kept
const DefaultTTL = 2 * time.Hour

// Store - server side session storage. Values are JSON encoded.
type Store interface {
	Get(sid, key string, dst interface{}) error
	Set(sid, key string, value interface{}) error
	Delete(sid string) error
}
