package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dialeradmin/models"
	"dialeradmin/session"

	"github.com/gin-gonic/gin"
)

const userKey = "dialeradmin/user"

type ulogin struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// SetCurrentUser -
func SetCurrentUser(c *gin.Context, u *models.User) {
	c.Set(userKey, u)
}

// CurrentUser - user authenticated by the middleware, nil otherwise
func CurrentUser(c *gin.Context) *models.User {

	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}

	u, _ := v.(*models.User)

	return u
}

// safeNext - only local paths are followed after login
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/admin/"
	}
	return next
}

func (a *Auth) setCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     a.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   a.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// LoginPage - GET /admin/login/
func (a *Auth) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Log in",
		"next":  safeNext(c.Query("next")),
	})
}

// Login - POST /admin/login/
func (a *Auth) Login(c *gin.Context) {

	var (
		cred = new(ulogin)
		next = safeNext(c.PostForm("next"))
	)

	if err := c.ShouldBind(cred); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"title":    "Log in",
			"next":     next,
			"username": cred.Username,
			"errors":   []string{"Please enter a username and password."},
		})
		return
	}

	token, err := a.SignIn(cred.Username, cred.Password)

	if err != nil {

		status := http.StatusUnauthorized
		msg := "Please enter the correct username and password for a staff account."

		if !errors.Is(err, ErrBadCredentials) {
			a.Logger.Errorf("failed to login : %v", err)
			status = http.StatusInternalServerError
			msg = "Login is unavailable, please try again later."
		}

		c.HTML(status, "login.html", gin.H{
			"title":    "Log in",
			"next":     next,
			"username": cred.Username,
			"errors":   []string{msg},
		})
		return
	}

	a.Logger.Infof("admin login : %s", cred.Username)

	a.setCookie(c, token, int(TokenTTL.Seconds()))

	c.Redirect(http.StatusFound, next)
}

// LoginUser - JSON login for API clients
func (a *Auth) LoginUser(c *gin.Context) {

	cred := new(ulogin)

	// 1. parse request
	if err := c.ShouldBindJSON(cred); err != nil {
		a.Logger.Errorf("cannot parse login user details : %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprint(err),
		})
		c.Abort()
		return
	}

	// 2. authenticate user
	token, err := a.SignIn(cred.Username, cred.Password)

	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, ErrBadCredentials) {
			a.Logger.Errorf("failed to login : %v", err)
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"status": http.StatusText(status),
			"error":  fmt.Sprint(err),
		})
		c.Abort()
		return
	}

	// 3. successful login
	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusText(http.StatusOK),
		"user":   cred.Username,
		"token":  token,
	})
}

// Logout - revokes the token and clears the cookie
func (a *Auth) Logout(c *gin.Context) {

	if u := CurrentUser(c); u != nil {
		if err := a.SignOut(u.Username); err != nil {
			a.Logger.Errorf("cannot delete token of %s : %v", u.Username, err)
		}
	}

	if sess := session.Default(c); sess != nil {
		if err := sess.Clear(); err != nil {
			a.Logger.Errorf("cannot clear session : %v", err)
		}
	}

	a.setCookie(c, "", -1)

	c.Redirect(http.StatusFound, "/admin/login/")
}
