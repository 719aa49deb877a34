package voipcall

import (
	"net/http"

	"dialeradmin/reports"
	"dialeradmin/session"

	"github.com/gin-gonic/gin"
)

// Export - CSV of the row set the last report of this session showed
func (ctl *Controller) Export(c *gin.Context) {

	var filter reports.Filter

	sess := session.Default(c)

	if sess == nil || sess.Get(SessionKey, &filter) != nil {
		ctl.Logger.Errorf("[EXPORT VOIP REPORT] no call report in session")
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  "no call report to export, open the call report first",
		})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=export.csv")
	c.Status(http.StatusOK)

	if err := reports.WriteCSV(c.Writer, ctl.Service.Repo, filter); err != nil {
		// headers are gone, the download ends short
		ctl.Logger.Errorf("[EXPORT VOIP REPORT] %v", err)
	}
}
