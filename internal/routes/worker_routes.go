package routes

import (
	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/controllers"
	"wastewise_portal/internal/middleware"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/session"
)

func WorkerRoutes(r *gin.Engine, app *controllers.App, sessions *session.Manager) {
	worker := r.Group("/worker")
	worker.Use(middleware.RequireRole(sessions, models.RoleWorker))
	{
		worker.GET("", app.WorkerHome)
		worker.POST("/collection/start", app.StartCollection)
		worker.POST("/collection/end", app.EndCollection)
	}
}
