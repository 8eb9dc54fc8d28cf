package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wastewise_portal/internal/api"
	"wastewise_portal/internal/models"
)

// logLookup is the by-zone / by-vehicle report query on the admin home.
type logLookup struct {
	Type  string
	ID    string
	Rows  []models.WasteLog
	Error string
}

// AdminHome aggregates the operational stats from the caches and the
// collection reports from the backend. Report failures degrade to a banner;
// the stats stay up.
func (a *App) AdminHome(c *gin.Context) {
	ctx := a.ctx(c)
	logs := a.API.WasteLogs()

	var reportsErr string
	weekly := models.CollectionSummary{}
	monthly := models.CollectionSummary{}

	if s, err := logs.WeeklyWeight(ctx); err == nil {
		weekly.TotalWeight = s.TotalWeight
	} else if a.handleUnauthorized(c, err) {
		return
	} else {
		reportsErr = api.ErrorMessage(err)
	}
	if s, err := logs.WeeklyCollections(ctx); err == nil {
		weekly.TotalCollections = s.TotalCollections
	} else if reportsErr == "" {
		reportsErr = api.ErrorMessage(err)
	}
	if s, err := logs.MonthlyWeight(ctx); err == nil {
		monthly.TotalWeight = s.TotalWeight
	} else if reportsErr == "" {
		reportsErr = api.ErrorMessage(err)
	}
	if s, err := logs.MonthlyCollections(ctx); err == nil {
		monthly.TotalCollections = s.TotalCollections
	} else if reportsErr == "" {
		reportsErr = api.ErrorMessage(err)
	}

	recent, err := logs.RecentLogs(ctx, nil)
	if err != nil {
		if a.handleUnauthorized(c, err) {
			return
		}
		logrus.WithError(err).Warn("recent logs unavailable")
		if reportsErr == "" {
			reportsErr = api.ErrorMessage(err)
		}
	}

	lookup := logLookup{Type: c.Query("logType"), ID: strings.TrimSpace(c.Query("targetId"))}
	if lookup.Type == "" {
		lookup.Type = "zone"
	}
	if lookup.ID != "" {
		params := url.Values{}
		var rows []models.WasteLog
		var lookupErr error
		switch lookup.Type {
		case "vehicle":
			params.Set("vehicleId", lookup.ID)
			rows, lookupErr = logs.VehicleReports(ctx, params)
		default:
			params.Set("zoneId", lookup.ID)
			rows, lookupErr = logs.ZoneReports(ctx, params)
		}
		if lookupErr != nil {
			if a.handleUnauthorized(c, lookupErr) {
				return
			}
			lookup.Error = api.ErrorMessage(lookupErr)
		} else if len(rows) == 0 {
			lookup.Error = "No logs found for " + lookup.ID
		} else {
			lookup.Rows = rows
		}
	}

	vehiclesByStatus := a.Stores.Vehicles.CountBy(func(v models.Vehicle) string { return strings.ToLower(v.Status) })
	workersByStatus := a.Stores.Workers.CountBy(func(w models.Worker) string { return strings.ToLower(w.Status) })
	stats := []Stat{
		{Label: "Zones", Value: a.Stores.Zones.Len()},
		{Label: "Routes", Value: a.Stores.Routes.Len()},
		{Label: "Vehicles available", Value: vehiclesByStatus[models.VehicleStatusAvailable]},
		{Label: "Vehicles in maintenance", Value: vehiclesByStatus[models.VehicleStatusUnderMaintenance]},
		{Label: "Workers available", Value: workersByStatus[models.WorkerStatusAvailable]},
		{Label: "Assignments", Value: a.Stores.Assignments.Len()},
		{Label: "Pickups", Value: a.Stores.Pickups.Len()},
	}

	c.HTML(http.StatusOK, "home_admin", gin.H{
		"Page":         a.page(c, "Admin dashboard"),
		"Stats":        stats,
		"Weekly":       weekly,
		"Monthly":      monthly,
		"ReportsError": reportsErr,
		"Lookup":       lookup,
		"RecentLogs":   recent,
	})
}

// SchedulerHome is the scheduler's landing page; scheduling work happens on
// the pickup screens, so this simply forwards there.
func (a *App) SchedulerHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/scheduler/pickups")
}
