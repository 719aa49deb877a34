package auth

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dialeradmin/models"
	"dialeradmin/security"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/sirupsen/logrus"
)

func setup(t *testing.T) *Auth {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(models.All()...).Error; err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hash, err := security.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	for _, u := range []models.User{
		{Username: "staff", Password: hash, IsStaff: true, IsActive: true, DateJoined: time.Now()},
		{Username: "inactive", Password: hash, IsStaff: true, IsActive: false, DateJoined: time.Now()},
		{Username: "customer", Password: hash, IsActive: true, DateJoined: time.Now()},
	} {
		u := u
		if err := db.Create(&u).Error; err != nil {
			t.Fatalf("user: %v", err)
		}
	}

	logger := logrus.New()
	logger.Out = ioutil.Discard

	return New(db, logger, "test-secret")
}

func bearer(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func TestSignIn_AndVerify(t *testing.T) {
	a := setup(t)

	token, err := a.SignIn("staff", "s3cret-pass")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	user, err := a.Verify(bearer(token))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.Username != "staff" {
		t.Fatalf("unexpected user %q", user.Username)
	}

	var stored models.User
	a.DB.Where("username = ?", "staff").First(&stored)
	if stored.LastLogin == nil {
		t.Fatalf("expected last_login to be set")
	}
}

func TestSignIn_Rejected(t *testing.T) {
	a := setup(t)

	cases := []struct{ user, pass string }{
		{"staff", "wrong-pass"},
		{"nobody", "s3cret-pass"},
		{"inactive", "s3cret-pass"},
		{"customer", "s3cret-pass"},
	}

	for _, tc := range cases {
		if _, err := a.SignIn(tc.user, tc.pass); err != ErrBadCredentials {
			t.Fatalf("%s: expected ErrBadCredentials, got %v", tc.user, err)
		}
	}
}

func TestVerify_CookieAndRevocation(t *testing.T) {
	a := setup(t)

	first, err := a.SignIn("staff", "s3cret-pass")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: a.CookieName, Value: first})
	if _, err := a.Verify(r); err != nil {
		t.Fatalf("cookie token should verify: %v", err)
	}

	// a newer login replaces the cached token
	if _, err := a.SignIn("staff", "s3cret-pass"); err != nil {
		t.Fatalf("second sign in: %v", err)
	}
	if _, err := a.Verify(bearer(first)); err == nil {
		t.Fatalf("replaced token must not verify")
	}

	if err := a.SignOut("staff"); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	var n int
	a.DB.Model(&models.Token{}).Count(&n)
	if n != 0 {
		t.Fatalf("expected no tokens after sign out, got %d", n)
	}
}

func TestVerify_BadTokens(t *testing.T) {
	a := setup(t)

	if _, err := a.Verify(httptest.NewRequest(http.MethodGet, "/", nil)); err == nil {
		t.Fatalf("expected error without a token")
	}
	if _, err := a.Verify(bearer("not-a-jwt")); err == nil {
		t.Fatalf("expected error for garbage")
	}

	other := New(a.DB, a.Logger, "other-secret")
	forged, _ := other.CreateToken("staff")
	if _, err := a.Verify(bearer(forged)); err == nil {
		t.Fatalf("expected error for a token signed with another secret")
	}
}

func TestSafeNext(t *testing.T) {
	cases := map[string]string{
		"":                     "/admin/",
		"/admin/dialer_cdr/":   "/admin/dialer_cdr/",
		"//evil.example.com":   "/admin/",
		"https://evil.example": "/admin/",
	}
	for in, want := range cases {
		if got := safeNext(in); got != want {
			t.Fatalf("safeNext(%q) = %q, want %q", in, got, want)
		}
	}
}
