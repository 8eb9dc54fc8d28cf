package routes

import (
	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/controllers"
	"wastewise_portal/internal/middleware"
	"wastewise_portal/internal/session"
)

func AuthRoutes(r *gin.Engine, app *controllers.App, sessions *session.Manager) {
	r.GET("/", app.Home)
	r.GET("/signin", app.ShowSignIn)
	r.POST("/signin", app.SignIn)
	r.POST("/signout", app.SignOut)

	r.POST("/theme", middleware.RequireSession(sessions), app.ToggleTheme)
}
