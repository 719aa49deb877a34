package data

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDSN(t *testing.T) {
	cases := []struct {
		driver string
		want   string
	}{
		{"mysql", "dialer:secret@tcp(db:3306)/cdr?charset=utf8&parseTime=True"},
		{"postgres", "host=db port=3306 user=dialer dbname=cdr password=secret sslmode=disable"},
		{"sqlite3", "cdr"},
	}

	for _, tc := range cases {
		v := viper.New()
		v.Set("database.driver", tc.driver)
		v.Set("database.host", "db")
		v.Set("database.port", "3306")
		v.Set("database.dbname", "cdr")
		v.Set("database.user", "dialer")
		v.Set("database.pass", "secret")

		got, err := DSN(v)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.driver, err)
		}
		if !strings.HasPrefix(got, tc.want) {
			t.Fatalf("%s: expected prefix %q, got %q", tc.driver, tc.want, got)
		}
	}
}

func TestDSN_UnknownDriver(t *testing.T) {
	v := viper.New()
	v.Set("database.driver", "oracle")

	if _, err := DSN(v); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpen_SQLiteMemory(t *testing.T) {
	v := viper.New()
	v.Set("database.driver", "sqlite3")
	v.Set("database.dbname", ":memory:")
	v.Set("app.environment", "production")

	conn, err := Open(v)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	if err := conn.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("select: %v", err)
	}
}
