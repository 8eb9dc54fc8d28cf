package routes

import (
	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/controllers"
	"wastewise_portal/internal/middleware"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/session"
)

func SchedulerRoutes(r *gin.Engine, app *controllers.App, sessions *session.Manager) {
	scheduler := r.Group("/scheduler")
	scheduler.Use(middleware.RequireRole(sessions, models.RoleScheduler))
	{
		scheduler.GET("", app.SchedulerHome)

		pickups := scheduler.Group("/pickups")
		{
			pickups.GET("", app.PickupDashboard)
			pickups.POST("/refresh", app.PickupRefresh)
			pickups.GET("/new", app.NewPickup)
			pickups.POST("/create", app.CreatePickup)
			pickups.GET("/update", app.EditPickup)
			pickups.POST("/update", app.UpdatePickup)
			pickups.GET("/delete", app.ShowDeletePickup)
			pickups.POST("/delete", app.DeletePickup)
		}
	}
}
