package routes

import (
	"net/http"

	"dialeradmin/admin"
	"dialeradmin/controllers/auth"
	"dialeradmin/controllers/callrequest"
	"dialeradmin/controllers/voipcall"
	middleware "dialeradmin/middlewares"
	"dialeradmin/reports"
	"dialeradmin/session"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// SiteTitle -
const SiteTitle = "Dialer administration"

// Deps - what the router is built from
type Deps struct {
	Config   *viper.Viper
	DB       *gorm.DB
	Sessions session.Store
	Logger   *logrus.Logger
}

// Router - returns gin router engine
func Router(d Deps) *gin.Engine {

	// If we're in production mode, set Gin to "release" mode
	if d.Config.GetString("app.environment") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(d.Logger))
	router.SetHTMLTemplate(admin.Templates())

	var (
		site  = admin.NewSite(SiteTitle)
		authn = auth.New(d.DB, d.Logger, d.Config.GetString("app.secret"))
		svc   = reports.NewService(reports.NewGormRepository(d.DB), d.Config.GetInt("report.per_page"))
		calls = callrequest.New(d.DB, d.Logger, site)
		voip  = voipcall.New(svc, d.Logger, site)
	)

	authn.Secure = d.Config.GetBool("session.cookie_secure")
	voip.Interval = d.Config.GetDuration("report.live_interval")

	sessions := session.Middleware(d.Sessions, session.Options{
		CookieName: d.Config.GetString("session.cookie_name"),
		MaxAge:     int(d.Config.GetDuration("session.ttl").Seconds()),
		Secure:     d.Config.GetBool("session.cookie_secure"),
	})

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/")
	})

	// 1. login
	public := router.Group("/admin", sessions)
	public.GET("/login/", authn.LoginPage)
	public.POST("/login/", authn.Login)

	// 2. admin screens, auth required
	private := router.Group("", sessions, middleware.Auth(authn))
	private.GET("/admin/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", site.Page(auth.CurrentUser(c), "Site administration"))
	})
	private.GET("/admin/logout/", authn.Logout)

	calls.Register(private)
	voip.Register(private)

	// 3. JSON api
	v1 := router.Group("/api/v1", middleware.CORS(d.Config.GetString("api.allow_origin")))

	v1.OPTIONS("/login", authn.LoginUser)
	v1.POST("/login", authn.LoginUser)

	v2 := v1.Group("", middleware.APIAuth(authn))

	v2.OPTIONS("/voipcall/summary", voip.Summary)
	voip.RegisterAPI(v2)

	router.NoRoute(func(c *gin.Context) {
		site.Error(c, http.StatusNotFound, nil, "Page not found.")
	})

	return router
}
