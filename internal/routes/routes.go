package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/controllers"
	"wastewise_portal/internal/session"
	"wastewise_portal/internal/views"
)

func SetupRouter(app *controllers.App, sessions *session.Manager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	r.SetHTMLTemplate(views.Templates())
	r.StaticFS("/assets", http.FS(views.Assets()))

	AuthRoutes(r, app, sessions)
	AdminRoutes(r, app, sessions)
	SchedulerRoutes(r, app, sessions)
	WorkerRoutes(r, app, sessions)

	// Unknown paths land on the visitor's own home screen.
	r.NoRoute(app.Home)

	return r
}
