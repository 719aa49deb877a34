package middleware

import (
	"net/http"
	"net/url"

	"dialeradmin/controllers/auth"

	"github.com/gin-gonic/gin"
)

// Auth - admin pages redirect anonymous visitors to the login form
func Auth(a *auth.Auth) gin.HandlerFunc {

	return func(c *gin.Context) {

		user, err := a.Verify(c.Request)

		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login/?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}

		auth.SetCurrentUser(c, user)

		c.Next()
	}
}

// APIAuth - JSON endpoints answer 401 instead of redirecting
func APIAuth(a *auth.Auth) gin.HandlerFunc {

	return func(c *gin.Context) {

		user, err := a.Verify(c.Request)

		if err != nil {

			c.JSON(http.StatusUnauthorized, gin.H{
				"status": http.StatusText(http.StatusUnauthorized),
			})

			c.Abort()

			return
		}

		auth.SetCurrentUser(c, user)

		c.Next()
	}
}
