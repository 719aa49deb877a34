package security

import "testing"

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := VerifyPassword(h, "correct horse"); err != nil {
		t.Fatalf("expected match: %v", err)
	}
	if err := VerifyPassword(h, "wrong horse"); err == nil {
		t.Fatalf("expected mismatch")
	}
}

func TestHash_TooShort(t *testing.T) {
	if _, err := Hash("short"); err != ErrShortPassword {
		t.Fatalf("expected ErrShortPassword, got %v", err)
	}
}
