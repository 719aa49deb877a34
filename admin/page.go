package admin

import (
	"net/http"

	"dialeradmin/models"

	"github.com/gin-gonic/gin"
)

// Page - template data shared by every admin page
func (s *Site) Page(user *models.User, title string) gin.H {
	return gin.H{
		"site":  s,
		"user":  user,
		"title": title,
	}
}

// Error - renders the error page
func (s *Site) Error(c *gin.Context, status int, user *models.User, message string) {
	data := s.Page(user, http.StatusText(status))
	data["message"] = message
	c.HTML(status, "error.html", data)
	c.Abort()
}

// Pages - number of pages for total rows, at least one
func Pages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
