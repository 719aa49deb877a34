package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength - shortest accepted admin password
const MinLength = 8

// ErrShortPassword -
var ErrShortPassword = errors.New("password is too short")

// Hash password before save
func Hash(pass string) (string, error) {

	if len(pass) < MinLength {
		return "", ErrShortPassword
	}

	b, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// VerifyPassword to login
func VerifyPassword(hashedPassword, pass string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(pass))
}
