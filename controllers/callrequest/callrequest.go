package callrequest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dialeradmin/admin"
	"dialeradmin/controllers/auth"
	"dialeradmin/forms"
	"dialeradmin/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

const distinctLimit = 50

// Controller - admin screens of call requests
type Controller struct {
	DB     *gorm.DB
	Logger *logrus.Logger
	Site   *admin.Site
	Admin  *admin.ModelAdmin
	Now    func() time.Time
}

// New - registers the call request screens on site
func New(db *gorm.DB, logger *logrus.Logger, site *admin.Site) *Controller {
	return &Controller{
		DB:     db,
		Logger: logger,
		Site:   site,
		Admin:  site.Register(NewAdmin()),
		Now:    time.Now,
	}
}

// Register - mounts the handlers under the model's admin path
func (ctl *Controller) Register(r gin.IRouter) {
	g := r.Group(ctl.Admin.URL())
	g.GET("", ctl.ChangeList)
	g.GET("add/", ctl.AddForm)
	g.POST("add/", ctl.Add)
	g.GET(":id/", ctl.ChangeForm)
	g.POST(":id/", ctl.Change)
	g.POST(":id/delete/", ctl.Delete)
}

// ChangeList - search, filters, ordering and pagination
func (ctl *Controller) ChangeList(c *gin.Context) {

	var (
		user   = auth.CurrentUser(c)
		params = c.Request.URL.Query()
		page   = pageNumber(params.Get("p"))
		total  int64
		rows   []models.Callrequest
	)

	db := ctl.DB.Model(&models.Callrequest{})
	db = ctl.Admin.Search(db, params.Get("q"))
	db = ctl.Admin.Filter(db, params, ctl.Now())

	if err := db.Count(&total).Error; err != nil {
		ctl.fail(c, "cannot count call requests", err)
		return
	}

	if err := ctl.Admin.Order(ctl.Admin.Paginate(db, page)).Find(&rows).Error; err != nil {
		ctl.fail(c, "cannot list call requests", err)
		return
	}

	if err := ctl.resolve(rows); err != nil {
		ctl.fail(c, "cannot resolve call request names", err)
		return
	}

	filters, err := ctl.Admin.FilterSpecs(params, ctl.filterValues)
	if err != nil {
		ctl.fail(c, "cannot load call request filters", err)
		return
	}

	objects := make([]admin.Object, 0, len(rows))
	for i := range rows {
		objects = append(objects, &rows[i])
	}

	data := ctl.Site.Page(user, ctl.Admin.Title())
	data["admin"] = ctl.Admin
	data["rows"] = objects
	data["filters"] = filters
	data["params"] = params
	data["q"] = params.Get("q")
	data["page"] = page
	data["pages"] = admin.Pages(total, ctl.Admin.PerPage())
	data["total"] = total
	data["canAdd"] = ctl.Admin.HasAddPermission(user)

	c.HTML(http.StatusOK, "change_list.html", data)
}

// AddForm - GET add/
func (ctl *Controller) AddForm(c *gin.Context) {

	user := auth.CurrentUser(c)

	if !ctl.Admin.HasAddPermission(user) {
		ctl.Site.Error(c, http.StatusForbidden, user, "You do not have permission to add call requests.")
		return
	}

	ctl.form(c, http.StatusOK, forms.NewCallrequestValues(ctl.Now()), nil, ctl.Admin.URL()+"add/", false)
}

// Add - POST add/
func (ctl *Controller) Add(c *gin.Context) {

	user := auth.CurrentUser(c)

	if !ctl.Admin.HasAddPermission(user) {
		ctl.Site.Error(c, http.StatusForbidden, user, "You do not have permission to add call requests.")
		return
	}

	form := new(forms.CallrequestForm)

	if err := c.ShouldBind(form); err != nil {
		ctl.form(c, http.StatusBadRequest, ctl.posted(c), forms.Errors(form, err), ctl.Admin.URL()+"add/", false)
		return
	}

	var cr models.Callrequest
	form.Apply(&cr)

	if err := ctl.DB.Create(&cr).Error; err != nil {
		ctl.fail(c, "cannot create call request", err)
		return
	}

	ctl.Logger.Infof("[CALLREQUEST] %s added call request %d (%s)", user.Username, cr.ID, cr.RequestUUID)

	c.Redirect(http.StatusFound, ctl.Admin.URL())
}

// ChangeForm - GET :id/
func (ctl *Controller) ChangeForm(c *gin.Context) {

	cr, ok := ctl.load(c)
	if !ok {
		return
	}

	user := auth.CurrentUser(c)

	ctl.form(c, http.StatusOK, forms.CallrequestValues(cr), nil, ctl.Admin.ObjectURL(cr), ctl.Admin.HasDeletePermission(user))
}

// Change - POST :id/
func (ctl *Controller) Change(c *gin.Context) {

	user := auth.CurrentUser(c)

	if !ctl.Admin.HasChangePermission(user) {
		ctl.Site.Error(c, http.StatusForbidden, user, "You do not have permission to change call requests.")
		return
	}

	cr, ok := ctl.load(c)
	if !ok {
		return
	}

	form := new(forms.CallrequestForm)

	if err := c.ShouldBind(form); err != nil {
		ctl.form(c, http.StatusBadRequest, ctl.posted(c), forms.Errors(form, err), ctl.Admin.ObjectURL(cr), ctl.Admin.HasDeletePermission(user))
		return
	}

	form.Apply(cr)

	if err := ctl.DB.Save(cr).Error; err != nil {
		ctl.fail(c, "cannot save call request", err)
		return
	}

	ctl.Logger.Infof("[CALLREQUEST] %s changed call request %d", user.Username, cr.ID)

	c.Redirect(http.StatusFound, ctl.Admin.URL())
}

// Delete - POST :id/delete/
func (ctl *Controller) Delete(c *gin.Context) {

	user := auth.CurrentUser(c)

	if !ctl.Admin.HasDeletePermission(user) {
		ctl.Site.Error(c, http.StatusForbidden, user, "You do not have permission to delete call requests.")
		return
	}

	cr, ok := ctl.load(c)
	if !ok {
		return
	}

	if err := ctl.DB.Delete(cr).Error; err != nil {
		ctl.fail(c, "cannot delete call request", err)
		return
	}

	ctl.Logger.Infof("[CALLREQUEST] %s deleted call request %d", user.Username, cr.ID)

	c.Redirect(http.StatusFound, ctl.Admin.URL())
}

func (ctl *Controller) form(c *gin.Context, status int, values map[string]string, errs []string, action string, canDelete bool) {

	title := "Change call request"
	if strings.HasSuffix(action, "/add/") {
		title = "Add call request"
	}

	data := ctl.Site.Page(auth.CurrentUser(c), title)
	data["admin"] = ctl.Admin
	data["values"] = values
	data["errors"] = errs
	data["action"] = action
	data["canDelete"] = canDelete

	c.HTML(status, "change_form.html", data)
}

// posted - submitted values, re-rendered with validation errors
func (ctl *Controller) posted(c *gin.Context) map[string]string {

	values := make(map[string]string)

	for _, set := range ctl.Admin.Fieldsets {
		for _, f := range set.Fields {
			values[f] = c.PostForm(f)
		}
	}

	return values
}

func (ctl *Controller) load(c *gin.Context) (*models.Callrequest, bool) {

	user := auth.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ctl.Site.Error(c, http.StatusNotFound, user, "Call request not found.")
		return nil, false
	}

	var cr models.Callrequest

	err = ctl.DB.Where("id = ?", id).First(&cr).Error

	if gorm.IsRecordNotFoundError(err) {
		ctl.Site.Error(c, http.StatusNotFound, user, fmt.Sprintf("Call request %d not found.", id))
		return nil, false
	}

	if err != nil {
		ctl.fail(c, "cannot load call request", err)
		return nil, false
	}

	return &cr, true
}

// resolve - campaign and gateway names for the list columns
func (ctl *Controller) resolve(rows []models.Callrequest) error {

	var campaigns, gateways []*int64

	for i := range rows {
		campaigns = append(campaigns, rows[i].CampaignID)
		gateways = append(gateways, rows[i].AlegGatewayID)
	}

	cnames, err := models.Names(ctl.DB, models.Campaign{}.TableName(), "name", models.IDs(campaigns...))
	if err != nil {
		return err
	}

	gnames, err := models.Names(ctl.DB, models.Gateway{}.TableName(), "name", models.IDs(gateways...))
	if err != nil {
		return err
	}

	for i := range rows {
		if rows[i].CampaignID != nil {
			rows[i].CampaignName = cnames[*rows[i].CampaignID]
		}
		if rows[i].AlegGatewayID != nil {
			rows[i].AlegGatewayName = gnames[*rows[i].AlegGatewayID]
		}
	}

	return nil
}

// filterValues - select fields list their choices, others their distinct values
func (ctl *Controller) filterValues(field string) ([]string, error) {

	if w := ctl.Admin.Widget(field); w.Type == "select" {
		vals := make([]string, 0, len(w.Choices))
		for _, ch := range w.Choices {
			vals = append(vals, ch.Value)
		}
		return vals, nil
	}

	return admin.Distinct(ctl.DB, models.Callrequest{}.TableName(), distinctLimit)(field)
}

func (ctl *Controller) fail(c *gin.Context, msg string, err error) {
	ctl.Logger.Errorf("[CALLREQUEST] %s : %v", msg, err)
	ctl.Site.Error(c, http.StatusInternalServerError, auth.CurrentUser(c), msg)
}

func pageNumber(s string) int {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 {
		return 1
	}
	return p
}
