package auth

import (
	"errors"
	"fmt"
	"time"

	"dialeradmin/models"
	"dialeradmin/security"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// ErrBadCredentials -
var ErrBadCredentials = errors.New("wrong username or password")

// TokenTTL - lifetime of an admin token
const TokenTTL = 12 * time.Hour

// Auth struct
type Auth struct {
	Logger     *logrus.Logger
	DB         *gorm.DB
	Secret     []byte
	CookieName string
	Secure     bool
}

// New -
func New(db *gorm.DB, logger *logrus.Logger, secret string) *Auth {
	return &Auth{
		Logger:     logger,
		DB:         db,
		Secret:     []byte(secret),
		CookieName: "admin_token",
	}
}

// SignIn - authorize, returns a fresh token for an active staff user
func (a *Auth) SignIn(username, password string) (string, error) {

	var user models.User

	// 1. Fetch user
	err := a.DB.Where("username = ?", username).First(&user).Error

	if gorm.IsRecordNotFoundError(err) {
		return "", ErrBadCredentials
	}

	if err != nil {
		return "", fmt.Errorf("cannot fetch user for auth. %w", err)
	}

	// 2. wrong credentials or no admin access
	if err = security.VerifyPassword(user.Password, password); err != nil || !user.CanUseAdmin() {
		a.Logger.Warnf("failed admin login for user %s", username)
		return "", ErrBadCredentials
	}

	token, err := a.CreateToken(username)
	if err != nil {
		return "", err
	}

	// 3. Save token to cache
	err = a.DB.Transaction(func(tx *gorm.DB) error {

		if err := tx.Where("username = ?", username).Delete(&models.Token{}).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.Token{Username: username, Token: token, CreatedAt: time.Now()}).Error; err != nil {
			return err
		}

		return tx.Model(&user).Update("last_login", time.Now()).Error
	})

	if err != nil {
		return "", fmt.Errorf("cannot save token. %w", err)
	}

	return token, nil
}

// SignOut - revokes the user's token
func (a *Auth) SignOut(username string) error {
	return a.DB.Where("username = ?", username).Delete(&models.Token{}).Error
}
