package routes

import (
	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/controllers"
	"wastewise_portal/internal/middleware"
	"wastewise_portal/internal/models"
	"wastewise_portal/internal/session"
)

func AdminRoutes(r *gin.Engine, app *controllers.App, sessions *session.Manager) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(sessions, models.RoleAdmin))
	{
		admin.GET("", app.AdminHome)

		zones := admin.Group("/zones")
		{
			zones.GET("", app.ZoneDashboard)
			zones.POST("/refresh", app.ZoneRefresh)
			zones.GET("/new", app.NewZone)
			zones.POST("/create", app.CreateZone)
			zones.GET("/update", app.EditZone)
			zones.POST("/update", app.UpdateZone)
			zones.GET("/delete", app.ShowDeleteZone)
			zones.POST("/delete", app.DeleteZone)
		}

		routes := admin.Group("/routes")
		{
			routes.GET("", app.RouteDashboard)
			routes.POST("/refresh", app.RouteRefresh)
			routes.GET("/new", app.NewRoute)
			routes.POST("/create", app.CreateRoute)
			routes.GET("/update", app.EditRoute)
			routes.POST("/update", app.UpdateRoute)
			routes.GET("/delete", app.ShowDeleteRoute)
			routes.POST("/delete", app.DeleteRoute)
		}

		vehicles := admin.Group("/vehicles")
		{
			vehicles.GET("", app.VehicleDashboard)
			vehicles.POST("/refresh", app.VehicleRefresh)
			vehicles.GET("/new", app.NewVehicle)
			vehicles.POST("/create", app.CreateVehicle)
			vehicles.GET("/update", app.EditVehicle)
			vehicles.POST("/update", app.UpdateVehicle)
			vehicles.GET("/delete", app.ShowDeleteVehicle)
			vehicles.POST("/delete", app.DeleteVehicle)
		}

		workers := admin.Group("/workers")
		{
			workers.GET("", app.WorkerDashboard)
			workers.POST("/refresh", app.WorkerRefresh)
			workers.GET("/new", app.NewWorker)
			workers.POST("/create", app.CreateWorker)
			workers.GET("/update", app.EditWorker)
			workers.POST("/update", app.UpdateWorker)
			workers.GET("/delete", app.ShowDeleteWorker)
			workers.POST("/delete", app.DeleteWorker)
		}

		assignments := admin.Group("/assignments")
		{
			assignments.GET("", app.AssignmentDashboard)
			assignments.POST("/refresh", app.AssignmentRefresh)
			assignments.GET("/new", app.NewAssignment)
			assignments.POST("/create", app.CreateAssignment)
			assignments.GET("/update", app.EditAssignment)
			assignments.POST("/update", app.UpdateAssignment)
			assignments.GET("/delete", app.ShowDeleteAssignment)
			assignments.POST("/delete", app.DeleteAssignment)
		}
	}
}
