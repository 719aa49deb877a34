package config

import (
	"errors"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// DefaultSecret - development signing key, refused in production
const DefaultSecret = "change-me"

// ErrDefaultSecret -
var ErrDefaultSecret = errors.New("app.secret must be set in production")

var (
	once sync.Once
	conf *viper.Viper
)

// defaults applied before config.yaml and the environment
var defaults = map[string]interface{}{
	"app.port":              "8000",
	"app.environment":       "development",
	"app.secret":            DefaultSecret,
	"app.log_path":          ".",
	"database.driver":       "mysql",
	"database.host":         "127.0.0.1",
	"database.port":         "3306",
	"database.dbname":       "dialer",
	"database.user":         "dialer",
	"database.pass":         "",
	"redis.addr":            "127.0.0.1:6379",
	"redis.pass":            "",
	"redis.db":              0,
	"session.driver":        "redis",
	"session.ttl":           "2h",
	"session.cookie_name":   "dialeradmin_session",
	"session.cookie_secure": false,
	"report.per_page":       100,
	"report.live_interval":  "5s",
	"api.allow_origin":      "*",
}

// New - builds a config reader from config.yaml and DIALERADMIN_* env vars
func New(paths ...string) *viper.Viper {

	v := viper.New()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{".", "./config", "/etc/dialeradmin"}
	}

	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("dialeradmin")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// a missing file is fine, defaults and env still apply
	_ = v.ReadInConfig()

	return v
}

// GetConfig - returns the process wide configuration
func GetConfig() *viper.Viper {

	once.Do(func() {
		conf = New()
	})

	return conf
}

// Validate - settings the server cannot run with
func Validate(v *viper.Viper) error {

	secret := v.GetString("app.secret")

	if v.GetString("app.environment") == "production" && (secret == "" || secret == DefaultSecret) {
		return ErrDefaultSecret
	}

	return nil
}
