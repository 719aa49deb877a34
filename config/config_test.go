package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	v := New(t.TempDir())

	if got := v.GetString("app.port"); got != "8000" {
		t.Fatalf("expected default port 8000, got %q", got)
	}
	if got := v.GetDuration("session.ttl"); got != 2*time.Hour {
		t.Fatalf("expected session ttl 2h, got %v", got)
	}
	if got := v.GetString("session.cookie_name"); got != "dialeradmin_session" {
		t.Fatalf("unexpected cookie name %q", got)
	}
}

func TestNew_ReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()

	body := []byte("app:\n  port: \"9090\"\ndatabase:\n  driver: postgres\n")
	if err := ioutil.WriteFile(filepath.Join(dir, "config.yaml"), body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	os.Setenv("DIALERADMIN_DATABASE_DBNAME", "cdr")
	defer os.Unsetenv("DIALERADMIN_DATABASE_DBNAME")

	v := New(dir)

	if got := v.GetString("app.port"); got != "9090" {
		t.Fatalf("expected port from file, got %q", got)
	}
	if got := v.GetString("database.driver"); got != "postgres" {
		t.Fatalf("expected postgres driver, got %q", got)
	}
	if got := v.GetString("database.dbname"); got != "cdr" {
		t.Fatalf("expected dbname from env, got %q", got)
	}
}

func TestValidate_Secret(t *testing.T) {
	v := New(t.TempDir())

	if err := Validate(v); err != nil {
		t.Fatalf("default secret is fine in development: %v", err)
	}

	v.Set("app.environment", "production")
	if err := Validate(v); err != ErrDefaultSecret {
		t.Fatalf("expected ErrDefaultSecret, got %v", err)
	}

	v.Set("app.secret", "")
	if err := Validate(v); err != ErrDefaultSecret {
		t.Fatalf("expected ErrDefaultSecret for an empty secret, got %v", err)
	}

	v.Set("app.secret", "3f9c2a7d1e")
	if err := Validate(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
