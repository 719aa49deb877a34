package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextKey = "dialeradmin/session"

// Options - session cookie settings
type Options struct {
	CookieName string
	MaxAge     int // seconds
	Secure     bool
}

// Session - the requester's session
type Session struct {
	ID    string
	store Store
}

// Get -
func (s *Session) Get(key string, dst interface{}) error {
	return s.store.Get(s.ID, key, dst)
}

// Set -
func (s *Session) Set(key string, value interface{}) error {
	return s.store.Set(s.ID, key, value)
}

// Clear -
func (s *Session) Clear() error {
	return s.store.Delete(s.ID)
}

// Middleware - loads the session id from its cookie, creating one when
// missing or malformed
func Middleware(store Store, opts Options) gin.HandlerFunc {

	if opts.CookieName == "" {
		opts.CookieName = "dialeradmin_session"
	}

	if opts.MaxAge <= 0 {
		opts.MaxAge = int(DefaultTTL.Seconds())
	}

	return func(c *gin.Context) {

		sid, err := c.Cookie(opts.CookieName)

		if err != nil || !valid(sid) {
			sid = uuid.New().String()
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     opts.CookieName,
			Value:    sid,
			Path:     "/",
			MaxAge:   opts.MaxAge,
			Secure:   opts.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		c.Set(contextKey, &Session{ID: sid, store: store})

		c.Next()
	}
}

// Default - session attached by Middleware, nil when the route has none
func Default(c *gin.Context) *Session {

	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}

	s, _ := v.(*Session)

	return s
}

func valid(sid string) bool {
	_, err := uuid.Parse(sid)
	return err == nil
}
