package voipcall

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dialeradmin/admin"
	"dialeradmin/controllers/auth"
	"dialeradmin/forms"
	"dialeradmin/models"
	"dialeradmin/reports"
	"dialeradmin/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionKey - session attribute holding the filter of the last report
const SessionKey = "voipcall_record_qs"

// Controller - call report screens
type Controller struct {
	Service  *reports.Service
	Logger   *logrus.Logger
	Site     *admin.Site
	Admin    *admin.ModelAdmin
	Interval time.Duration // live summary push period
}

// New - registers the call report on site
func New(svc *reports.Service, logger *logrus.Logger, site *admin.Site) *Controller {
	return &Controller{
		Service:  svc,
		Logger:   logger,
		Site:     site,
		Admin:    site.Register(NewAdmin()),
		Interval: 5 * time.Second,
	}
}

// Register - admin routes of the report
func (ctl *Controller) Register(r gin.IRouter) {
	g := r.Group(ctl.Admin.URL())
	g.GET("", ctl.ChangeList)
	g.POST("", ctl.Search)
	g.GET("add/", ctl.AddDenied)
	g.POST("add/", ctl.AddDenied)
	g.GET("export_voip_report/", ctl.Export)
	g.GET("live/", ctl.Live)
	g.GET(":id/", ctl.Detail)
}

// RegisterAPI - JSON routes of the report
func (ctl *Controller) RegisterAPI(r gin.IRouter) {
	r.GET("/voipcall/summary", ctl.Summary)
}

// ChangeList - GET, calls of today with an empty search form
func (ctl *Controller) ChangeList(c *gin.Context) {
	ctl.render(c, ctl.Service.Today(), pageNumber(c.Query("p")), searchValues(c, false), nil, false)
}

// Search - POST, calls matching the submitted search form
func (ctl *Controller) Search(c *gin.Context) {

	var (
		form   = new(forms.VoipSearchForm)
		values = searchValues(c, true)
		page   = pageNumber(c.PostForm("p"))
		filter reports.Filter
		errs   []string
	)

	err := c.ShouldBind(form)

	if err == nil {
		filter, err = form.Filter(ctl.Service.Now())
		if err != nil {
			errs = []string{err.Error()}
		}
	} else {
		errs = forms.Errors(form, err)
	}

	// invalid input keeps the default row set
	if errs != nil {
		filter = ctl.Service.Today()
		page = 1
	}

	ctl.render(c, filter, page, values, errs, errs == nil)
}

func (ctl *Controller) render(c *gin.Context, f reports.Filter, page int, values map[string]string, errs []string, searched bool) {

	user := auth.CurrentUser(c)

	// 1. remember the row set for the export
	sess := session.Default(c)
	if sess == nil {
		ctl.fail(c, "session is not configured", errors.New("no session middleware"))
		return
	}

	if err := sess.Set(SessionKey, f); err != nil {
		ctl.fail(c, "cannot store the report in the session", err)
		return
	}

	// 2. rows, daily totals and summary
	report, err := ctl.Service.Build(f, page)
	if err != nil {
		ctl.fail(c, "cannot build the call report", err)
		return
	}

	objects := make([]admin.Object, 0, len(report.Calls))
	for i := range report.Calls {
		objects = append(objects, &report.Calls[i])
	}

	data := ctl.Site.Page(user, ctl.Admin.Title())
	data["admin"] = ctl.Admin
	data["report"] = report
	data["rows"] = objects
	data["form"] = values
	data["statusChoices"] = forms.StatusChoices()
	data["errors"] = errs
	data["searched"] = searched
	data["params"] = c.Request.URL.Query()

	c.HTML(http.StatusOK, "voipcall_change_list.html", data)
}

// AddDenied - call records are never created from the admin
func (ctl *Controller) AddDenied(c *gin.Context) {
	ctl.Site.Error(c, http.StatusForbidden, auth.CurrentUser(c), "Call records cannot be added.")
}

// Detail - read only view of one call
func (ctl *Controller) Detail(c *gin.Context) {

	user := auth.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ctl.Site.Error(c, http.StatusNotFound, user, "Call not found.")
		return
	}

	call, err := ctl.Service.Repo.Get(id)

	if errors.Is(err, reports.ErrNotFound) {
		ctl.Site.Error(c, http.StatusNotFound, user, fmt.Sprintf("Call %d not found.", id))
		return
	}

	if err != nil {
		ctl.fail(c, "cannot load the call", err)
		return
	}

	data := ctl.Site.Page(user, fmt.Sprintf("Call %d", call.ID))
	data["admin"] = ctl.Admin
	data["object"] = admin.Object(call)
	data["fields"] = ctl.Admin.Fieldsets[0].Fields

	c.HTML(http.StatusOK, "object_detail.html", data)
}

// Summary - daily totals and summary of a search, as JSON
func (ctl *Controller) Summary(c *gin.Context) {

	form := new(forms.VoipSearchForm)

	if err := c.ShouldBindQuery(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  forms.Errors(form, err),
		})
		return
	}

	filter, err := form.Filter(ctl.Service.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  []string{err.Error()},
		})
		return
	}

	daily, summary, err := ctl.Service.Totals(filter)
	if err != nil {
		ctl.Logger.Errorf("[VOIPCALL SUMMARY] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusText(http.StatusInternalServerError),
			"error":  "cannot compute the call summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusText(http.StatusOK),
		"filter":  filter,
		"daily":   daily,
		"summary": summary,
	})
}

func (ctl *Controller) fail(c *gin.Context, msg string, err error) {
	ctl.Logger.Errorf("[VOIPCALL] %s : %v", msg, err)
	ctl.Site.Error(c, http.StatusInternalServerError, auth.CurrentUser(c), msg)
}

// searchValues - raw search inputs for the form, empty on GET
func searchValues(c *gin.Context, posted bool) map[string]string {

	values := map[string]string{
		"from_date": "",
		"to_date":   "",
		"status":    forms.StatusAll,
		"callerid":  "",
	}

	if !posted {
		return values
	}

	for k := range values {
		if v := c.PostForm(k); v != "" {
			values[k] = v
		}
	}

	return values
}

func pageNumber(s string) int {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 {
		return 1
	}
	return p
}

var _ admin.Object = (*models.VoIPCall)(nil)
