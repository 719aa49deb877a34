package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dialeradmin/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// ErrInvalidToken -
var ErrInvalidToken = errors.New("invalid token")

// CreateToken - create a token
func (a *Auth) CreateToken(username string) (string, error) {

	claims := jwt.MapClaims{
		"user_id":    username,
		"exp":        time.Now().Add(TokenTTL).Unix(),
		"authorized": true,
		"jti":        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(a.Secret)
}

// ExtractToken - bearer header first, then the admin cookie
func (a *Auth) ExtractToken(r *http.Request) string {

	vals := strings.Split(r.Header.Get("Authorization"), " ")

	if len(vals) == 2 && strings.EqualFold(vals[0], "bearer") {
		return vals[1]
	}

	if ck, err := r.Cookie(a.CookieName); err == nil {
		return ck.Value
	}

	return ""
}

// TokenID - extract UserID
func (a *Auth) TokenID(tokenString string) (string, error) {

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.Secret, nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if uid, ok := claims["user_id"].(string); ok && uid != "" {
			return uid, nil
		}
	}

	return "", ErrInvalidToken
}

// CachedToken - the token must be the last one issued to the user
func (a *Auth) CachedToken(uid, token string) error {

	var cached models.Token

	err := a.DB.Where("username = ?", uid).First(&cached).Error

	if gorm.IsRecordNotFoundError(err) {
		return ErrInvalidToken
	}

	if err != nil {
		return err
	}

	if cached.Token != token {
		return ErrInvalidToken
	}

	return nil
}

// Verify - user behind the request's token
func (a *Auth) Verify(r *http.Request) (*models.User, error) {

	tokenString := a.ExtractToken(r)
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	uid, err := a.TokenID(tokenString)
	if err != nil {
		return nil, err
	}

	if err = a.CachedToken(uid, tokenString); err != nil {
		return nil, err
	}

	var user models.User

	if err = a.DB.Where("username = ?", uid).First(&user).Error; err != nil {
		return nil, err
	}

	if !user.CanUseAdmin() {
		return nil, ErrInvalidToken
	}

	return &user, nil
}
